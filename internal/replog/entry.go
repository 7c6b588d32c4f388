package replog

import (
	"errors"
	"time"
)

var (
	ErrEmptyExerciseName = errors.New("exercise name empty")
	ErrInvalidReps       = errors.New("reps must be greater than zero")
	ErrDuplicateExercise = errors.New("exercise already in catalog")
)

// Entry is one recorded exercise performance. Entries are immutable
// once created, the log only grows by appending them.
type Entry struct {
	ExerciseName string    `json:"exerciseName"`
	Reps         int       `json:"reps"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate checks the entry against the log entry schema. Used both for
// user input and for records decoded from the stored log.
func (e Entry) Validate() error {
	if e.ExerciseName == "" {
		return ErrEmptyExerciseName
	}
	if e.Reps <= 0 {
		return ErrInvalidReps
	}
	if e.CreatedAt.IsZero() {
		return errors.New("created at not set")
	}
	return nil
}
