// Package ai holds the clients for the external speech-to-text and
// text-generation providers.
package ai

import (
	"context"
	"io"
)

// Prompt is one JSON-mode generation request
type Prompt struct {
	System string
	User   string
}

// Completion is the raw text a model returned
type Completion struct {
	Text  string
	Model string
}

// TextGenerator produces a JSON object for a prompt
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt Prompt) (*Completion, error)
	Model() string
}

// Transcription is the result of one speech-to-text call
type Transcription struct {
	Text            string  `json:"text"`
	DurationSeconds float64 `json:"durationSeconds"`
	Language        string  `json:"language"`
}

// Transcriber converts recorded audio to text
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, fileName string) (*Transcription, error)
}
