package gateway

// OpConfig sets the generation budget of one operation.
type OpConfig struct {
	MaxTokens   int
	Temperature float64
}

// Config holds per-operation settings.
type Config struct {
	Assessment    OpConfig
	Evaluation    OpConfig
	FinalFeedback OpConfig
}

// DefaultConfig returns the settings used by the app. Transcription runs
// cold; the closing message is allowed more variety.
func DefaultConfig() Config {
	return Config{
		Assessment:    OpConfig{MaxTokens: 8192, Temperature: 0.2},
		Evaluation:    OpConfig{MaxTokens: 1024, Temperature: 0.2},
		FinalFeedback: OpConfig{MaxTokens: 512, Temperature: 0.8},
	}
}
