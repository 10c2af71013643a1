package assessment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/store"
)

// recordAnswers appends one answer event per graded question of b, with
// the status the engine settled on. Failures are logged and ignored.
func (o *Orchestrator) recordAnswers(ctx context.Context, b *quiz.Batch) {
	if o.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	for _, id := range b.QuestionIDs() {
		q, ok := o.story.Question(id)
		if !ok {
			continue
		}
		st, _ := o.engine.State(id)
		data := store.AnswerEventData{
			SessionID:     o.sessionID,
			QuestionID:    id,
			QuestionType:  string(q.Type),
			QuestionText:  q.Text,
			StudentAnswer: b.Answer(id),
			Attempt:       st.Attempt,
			Status:        string(st.Status),
			Correct:       st.Status == quiz.Correct,
		}
		if st.Feedback != nil {
			data.Score = st.Feedback.Score
			data.Feedback = st.Feedback.Feedback
		}
		if err := o.repo.AppendAnswer(ctx, data); err != nil {
			o.logger.Warn("failed to record answer event",
				zap.String("session_id", o.sessionID),
				zap.Int("question_id", id),
				zap.Error(err),
			)
		}
	}
}

func (o *Orchestrator) recordAssessment(ctx context.Context) {
	if o.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	data := store.AssessmentEventData{
		SessionID:        o.sessionID,
		FirstName:        o.user.FirstName,
		LastName:         o.user.LastName,
		StoryTitle:       o.story.Title,
		ScoreLiteral:     o.score.Literal,
		ScoreInferential: o.score.Inferential,
		ScoreEvaluative:  o.score.Evaluative,
		ScoreTotal:       o.score.Total,
		DurationSecs:     int(time.Since(o.started).Seconds()),
	}
	if err := o.repo.AppendAssessment(ctx, data); err != nil {
		o.logger.Warn("failed to record assessment", zap.String("session_id", o.sessionID), zap.Error(err))
	}
}
