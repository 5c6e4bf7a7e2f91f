package ai

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

// TranscriptionService turns one answer recording into text for the form
type TranscriptionService struct {
	transcriber pkgai.Transcriber
	logger      *zap.Logger
}

// NewTranscriptionService creates a transcription service
func NewTranscriptionService(transcriber pkgai.Transcriber, logger *zap.Logger) *TranscriptionService {
	return &TranscriptionService{transcriber: transcriber, logger: logger}
}

// TranscribeAnswer transcribes a recording. Upstream failures come back as
// ErrTranscriptionFailed and the caller may simply try again.
func (s *TranscriptionService) TranscribeAnswer(ctx context.Context, audio io.Reader, fileName string) (*pkgai.Transcription, error) {
	t, err := s.transcriber.Transcribe(ctx, audio, fileName)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Transcription failed",
				zap.String("file_name", fileName),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrTranscriptionFailed, err)
	}
	t.Text = strings.TrimSpace(t.Text)
	return t, nil
}
