package errors

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("object storage failure")
	ErrDraftStore   = errors.New("draft store failure")
)

// Candidate errors
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrNoAudio           = errors.New("no audio to analyze")
	ErrNothingToSync     = errors.New("nothing to sync")
	ErrDraftNotFound     = errors.New("draft not found")
)

// Analysis errors
var (
	ErrAnalysisExists      = errors.New("analysis already exists for this candidate")
	ErrAnalysisNotFound    = errors.New("analysis not found")
	ErrAnalysisUnavailable = errors.New("analysis unavailable")
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrDispatcherStopped   = errors.New("scoring dispatcher stopped")
)

// ErrMalformedUpstream marks a model response that failed schema validation.
// It also matches ErrAnalysisUnavailable.
var ErrMalformedUpstream error = malformedUpstream{}

type malformedUpstream struct{}

func (malformedUpstream) Error() string { return "malformed upstream response" }

func (malformedUpstream) Is(target error) bool {
	return target == ErrAnalysisUnavailable
}

// Intake validation messages surfaced verbatim to the submitter.
const (
	MsgMissingRequiredFields = "Please fill in all required fields"
	MsgMissingAnswers        = "Please answer all questions"
)

// ValidationError lists the fields that blocked a submission.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
