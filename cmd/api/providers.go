package main

import (
	"context"
	"fmt"
	"time"

	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
	"github.com/johnquangdev/candidate-screening/pkg/config"
)

// newGenerator builds the text generation client named by LLM_PROVIDER
func newGenerator(cfg *config.Config) (pkgai.TextGenerator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI, config.ProviderGroq:
		client, err := pkgai.NewChatClient(&cfg.LLM)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderGemini:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		client, err := pkgai.NewGeminiClient(ctx, &cfg.LLM)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
}

// newTranscriber builds the speech-to-text client named by TRANSCRIPTION_PROVIDER
func newTranscriber(cfg *config.Config) (pkgai.Transcriber, error) {
	switch cfg.Transcription.Provider {
	case config.ProviderWhisper:
		client, err := pkgai.NewWhisperClient(cfg.TranscriptionAPIKey(), &cfg.Transcription)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderAssemblyAI:
		client, err := pkgai.NewAssemblyAIClient(cfg.TranscriptionAPIKey())
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return nil, fmt.Errorf("unsupported transcription provider %q", cfg.Transcription.Provider)
}
