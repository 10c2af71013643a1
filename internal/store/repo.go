package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AnswerEventData captures one evaluated answer.
type AnswerEventData struct {
	SessionID     string
	QuestionID    int
	QuestionType  string
	QuestionText  string
	StudentAnswer string
	Attempt       int
	Status        string
	Correct       bool
	Score         int
	Feedback      string
}

// AssessmentEventData captures a completed assessment.
type AssessmentEventData struct {
	SessionID        string
	FirstName        string
	LastName         string
	StoryTitle       string
	ScoreLiteral     int
	ScoreInferential int
	ScoreEvaluative  int
	ScoreTotal       int
	DurationSecs     int
}

// AssessmentRecord is a stored assessment.
type AssessmentRecord struct {
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendAnswer records an evaluated answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendAssessment records a completed assessment.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// QueryAssessments returns completed assessments, newest first.
	QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error)

	// AnswersForSession returns the answers of one assessment in the order
	// they were recorded.
	AnswersForSession(ctx context.Context, sessionID string) ([]AnswerEventData, error)
}
