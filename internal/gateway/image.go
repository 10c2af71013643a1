package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/story"
)

// DecodeImage turns base64 image data into an llm.Image. A leading
// "data:<mime>;base64," header is stripped and its MIME type wins over
// mimeType.
func DecodeImage(data, mimeType string) (llm.Image, error) {
	data = strings.TrimSpace(data)
	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found {
			return llm.Image{}, fmt.Errorf("malformed data URL")
		}
		if mt, _, _ := strings.Cut(header, ";"); mt != "" {
			mimeType = mt
		}
		data = payload
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return llm.Image{}, fmt.Errorf("unsupported MIME type %q", mimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return llm.Image{}, fmt.Errorf("decode base64 image: %w", err)
	}
	return llm.Image{MIMEType: mimeType, Data: raw}, nil
}

// GenerateAssessmentBase64 is GenerateAssessment for base64 input, with
// or without a data: URL header.
func (g *Gateway) GenerateAssessmentBase64(ctx context.Context, data, mimeType string) (*story.StoryData, error) {
	img, err := DecodeImage(data, mimeType)
	if err != nil {
		return nil, &LLMFailure{Op: OpAssessment, Err: err}
	}
	return g.GenerateAssessment(ctx, img)
}
