// Package assessment drives one pupil through an assessment: login, page
// upload, reading, the quiz and the results.
package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/story"
)

// State is the screen-level phase of the application.
type State string

const (
	Login        State = "LOGIN"
	Setup        State = "SETUP"
	LoadingStory State = "LOADING_STORY"
	Reading      State = "READING"
	Quiz         State = "QUIZ"
	Results      State = "RESULTS"
)

// Event names the intent that triggered a transition.
type Event string

const (
	EventLogin          Event = "login"
	EventUpload         Event = "upload"
	EventStoryLoaded    Event = "story-loaded"
	EventFinishReading  Event = "finish-reading"
	EventSubmit         Event = "submit"
	EventFinishQuiz     Event = "finish-quiz"
	EventFinalFeedback  Event = "final-feedback"
	EventDownloadReport Event = "download-report"
	EventQuit           Event = "quit"
)

// ErrInvalidName is returned when the first or last name is blank.
var ErrInvalidName = errors.New("first and last name are required")

// TransitionError reports an event that is not allowed in the current
// state. The state is left unchanged.
type TransitionError struct {
	From  State
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s is not allowed in state %s", e.Event, e.From)
}

// UserInfo identifies the pupil.
type UserInfo struct {
	FirstName string
	LastName  string
}

// FullName returns "First Last".
func (u UserInfo) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Gateway is the LLM surface the orchestrator needs.
type Gateway interface {
	quiz.Evaluator
	GenerateAssessment(ctx context.Context, img llm.Image) (*story.StoryData, error)
	GenerateFinalFeedback(ctx context.Context, sc score.UserScore, firstName string) string
}
