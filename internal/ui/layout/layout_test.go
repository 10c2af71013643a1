package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestWindow(t *testing.T) {
	content := "a\nb\nc\nd\ne"

	tests := []struct {
		name       string
		offset     int
		height     int
		want       string
		wantOffset int
	}{
		{"top", 0, 2, "a\nb", 0},
		{"middle", 2, 2, "c\nd", 2},
		{"clamped past end", 10, 2, "d\ne", 3},
		{"negative offset", -3, 2, "a\nb", 0},
		{"taller than content", 1, 10, "a\nb\nc\nd\ne", 0},
		{"zero height", 1, 0, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, offset := Window(content, tt.offset, tt.height)
			if got != tt.want {
				t.Errorf("Window() = %q, want %q", got, tt.want)
			}
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("le renard invita la cigogne à dîner", 12)
	for _, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w > 12 {
			t.Errorf("line %q is %d wide, want <= 12", line, w)
		}
	}
	if !strings.Contains(got, "cigogne") {
		t.Errorf("Wrap() lost words: %q", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected short terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}

func TestRenderHeader_ShowsPupil(t *testing.T) {
	h := RenderHeader("Lecture", "Amine Benali", 100)
	if !strings.Contains(h, "Amine Benali") {
		t.Errorf("header missing pupil name: %q", h)
	}
	if strings.Contains(RenderHeader("Connexion", "", 100), "●") {
		t.Error("header shows pupil marker without a pupil")
	}
}
