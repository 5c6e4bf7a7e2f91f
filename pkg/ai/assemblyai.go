package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
)

// AssemblyAIClient transcribes audio through the AssemblyAI SDK
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI transcriber
func NewAssemblyAIClient(apiKey string) (*AssemblyAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("assemblyai api key is required")
	}
	return &AssemblyAIClient{client: aai.NewClient(apiKey)}, nil
}

// Transcribe uploads the recording then waits for the transcript.
// Only the upload is retried; the audio reader is buffered so a retry can
// resend it.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader, fileName string) (*Transcription, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return nil, fmt.Errorf("read audio %s: %w", fileName, err)
	}
	if len(data) == 0 {
		return nil, errors.New("audio is empty")
	}

	var uploadURL string
	upload := func() error {
		u, err := c.client.Upload(ctx, strings.NewReader(string(data)))
		if err != nil {
			return err
		}
		uploadURL = u
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 4 * time.Second
	bo.MaxElapsedTime = 15 * time.Second
	if err := backoff.Retry(upload, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("upload to assemblyai: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
	}
	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcription: %s", msg)
	}

	result := &Transcription{Language: string(transcript.LanguageCode)}
	if transcript.Text != nil {
		result.Text = strings.TrimSpace(*transcript.Text)
	}
	if transcript.AudioDuration != nil {
		result.DurationSeconds = float64(*transcript.AudioDuration)
	}
	return result, nil
}
