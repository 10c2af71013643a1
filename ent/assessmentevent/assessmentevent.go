// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldStoryTitle holds the string denoting the story_title field in the database.
	FieldStoryTitle = "story_title"
	// FieldScoreLiteral holds the string denoting the score_literal field in the database.
	FieldScoreLiteral = "score_literal"
	// FieldScoreInferential holds the string denoting the score_inferential field in the database.
	FieldScoreInferential = "score_inferential"
	// FieldScoreEvaluative holds the string denoting the score_evaluative field in the database.
	FieldScoreEvaluative = "score_evaluative"
	// FieldScoreTotal holds the string denoting the score_total field in the database.
	FieldScoreTotal = "score_total"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldFirstName,
	FieldLastName,
	FieldStoryTitle,
	FieldScoreLiteral,
	FieldScoreInferential,
	FieldScoreEvaluative,
	FieldScoreTotal,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	LastNameValidator func(string) error
	// DefaultStoryTitle holds the default value on creation for the "story_title" field.
	DefaultStoryTitle string
	// DefaultScoreLiteral holds the default value on creation for the "score_literal" field.
	DefaultScoreLiteral int
	// DefaultScoreInferential holds the default value on creation for the "score_inferential" field.
	DefaultScoreInferential int
	// DefaultScoreEvaluative holds the default value on creation for the "score_evaluative" field.
	DefaultScoreEvaluative int
	// DefaultScoreTotal holds the default value on creation for the "score_total" field.
	DefaultScoreTotal int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByStoryTitle orders the results by the story_title field.
func ByStoryTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryTitle, opts...).ToFunc()
}

// ByScoreLiteral orders the results by the score_literal field.
func ByScoreLiteral(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreLiteral, opts...).ToFunc()
}

// ByScoreInferential orders the results by the score_inferential field.
func ByScoreInferential(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreInferential, opts...).ToFunc()
}

// ByScoreEvaluative orders the results by the score_evaluative field.
func ByScoreEvaluative(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreEvaluative, opts...).ToFunc()
}

// ByScoreTotal orders the results by the score_total field.
func ByScoreTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreTotal, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
