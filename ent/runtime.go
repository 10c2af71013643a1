// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lectio/ent/answerevent"
	"github.com/abhisek/lectio/ent/assessmentevent"
	"github.com/abhisek/lectio/ent/llmrequestevent"
	"github.com/abhisek/lectio/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescStudentAnswer is the schema descriptor for student_answer field.
	answereventDescStudentAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultStudentAnswer holds the default value on creation for the student_answer field.
	answerevent.DefaultStudentAnswer = answereventDescStudentAnswer.Default.(string)
	// answereventDescStatus is the schema descriptor for status field.
	answereventDescStatus := answereventFields[6].Descriptor()
	// answerevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	answerevent.StatusValidator = answereventDescStatus.Validators[0].(func(string) error)
	// answereventDescScore is the schema descriptor for score field.
	answereventDescScore := answereventFields[8].Descriptor()
	// answerevent.DefaultScore holds the default value on creation for the score field.
	answerevent.DefaultScore = answereventDescScore.Default.(int)
	// answereventDescFeedback is the schema descriptor for feedback field.
	answereventDescFeedback := answereventFields[9].Descriptor()
	// answerevent.DefaultFeedback holds the default value on creation for the feedback field.
	answerevent.DefaultFeedback = answereventDescFeedback.Default.(string)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescFirstName is the schema descriptor for first_name field.
	assessmenteventDescFirstName := assessmenteventFields[1].Descriptor()
	// assessmentevent.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	assessmentevent.FirstNameValidator = assessmenteventDescFirstName.Validators[0].(func(string) error)
	// assessmenteventDescLastName is the schema descriptor for last_name field.
	assessmenteventDescLastName := assessmenteventFields[2].Descriptor()
	// assessmentevent.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	assessmentevent.LastNameValidator = assessmenteventDescLastName.Validators[0].(func(string) error)
	// assessmenteventDescStoryTitle is the schema descriptor for story_title field.
	assessmenteventDescStoryTitle := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultStoryTitle holds the default value on creation for the story_title field.
	assessmentevent.DefaultStoryTitle = assessmenteventDescStoryTitle.Default.(string)
	// assessmenteventDescScoreLiteral is the schema descriptor for score_literal field.
	assessmenteventDescScoreLiteral := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultScoreLiteral holds the default value on creation for the score_literal field.
	assessmentevent.DefaultScoreLiteral = assessmenteventDescScoreLiteral.Default.(int)
	// assessmenteventDescScoreInferential is the schema descriptor for score_inferential field.
	assessmenteventDescScoreInferential := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultScoreInferential holds the default value on creation for the score_inferential field.
	assessmentevent.DefaultScoreInferential = assessmenteventDescScoreInferential.Default.(int)
	// assessmenteventDescScoreEvaluative is the schema descriptor for score_evaluative field.
	assessmenteventDescScoreEvaluative := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultScoreEvaluative holds the default value on creation for the score_evaluative field.
	assessmentevent.DefaultScoreEvaluative = assessmenteventDescScoreEvaluative.Default.(int)
	// assessmenteventDescScoreTotal is the schema descriptor for score_total field.
	assessmenteventDescScoreTotal := assessmenteventFields[7].Descriptor()
	// assessmentevent.DefaultScoreTotal holds the default value on creation for the score_total field.
	assessmentevent.DefaultScoreTotal = assessmenteventDescScoreTotal.Default.(int)
	// assessmenteventDescDurationSecs is the schema descriptor for duration_secs field.
	assessmenteventDescDurationSecs := assessmenteventFields[8].Descriptor()
	// assessmentevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	assessmentevent.DefaultDurationSecs = assessmenteventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
