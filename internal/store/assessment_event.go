package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/answerevent"
	"github.com/abhisek/lectio/ent/assessmentevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetQuestionText(data.QuestionText).
		SetStudentAnswer(data.StudentAnswer).
		SetAttempt(data.Attempt).
		SetStatus(data.Status).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetFirstName(data.FirstName).
		SetLastName(data.LastName).
		SetStoryTitle(data.StoryTitle).
		SetScoreLiteral(data.ScoreLiteral).
		SetScoreInferential(data.ScoreInferential).
		SetScoreEvaluative(data.ScoreEvaluative).
		SetScoreTotal(data.ScoreTotal).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error) {
	query := r.client.AssessmentEvent.Query().
		Order(ent.Desc(assessmentevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(assessmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(assessmentevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	records := make([]AssessmentRecord, len(events))
	for i, e := range events {
		records[i] = AssessmentRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AssessmentEventData: AssessmentEventData{
				SessionID:        e.SessionID,
				FirstName:        e.FirstName,
				LastName:         e.LastName,
				StoryTitle:       e.StoryTitle,
				ScoreLiteral:     e.ScoreLiteral,
				ScoreInferential: e.ScoreInferential,
				ScoreEvaluative:  e.ScoreEvaluative,
				ScoreTotal:       e.ScoreTotal,
				DurationSecs:     e.DurationSecs,
			},
		}
	}
	return records, nil
}

func (r *eventRepo) AnswersForSession(ctx context.Context, sessionID string) ([]AnswerEventData, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	out := make([]AnswerEventData, len(events))
	for i, e := range events {
		out[i] = AnswerEventData{
			SessionID:     e.SessionID,
			QuestionID:    e.QuestionID,
			QuestionType:  e.QuestionType,
			QuestionText:  e.QuestionText,
			StudentAnswer: e.StudentAnswer,
			Attempt:       e.Attempt,
			Status:        e.Status,
			Correct:       e.Correct,
			Score:         e.Score,
			Feedback:      e.Feedback,
		}
	}
	return out, nil
}
