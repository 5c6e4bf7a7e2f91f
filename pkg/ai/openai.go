package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/candidate-screening/pkg/config"
)

const (
	defaultOpenAIModel = openai.GPT4o
	defaultGroqModel   = "llama-3.3-70b-versatile"
	groqBaseURL        = "https://api.groq.com/openai/v1"
)

// ChatClient talks to an OpenAI-compatible chat completions API (OpenAI or Groq)
type ChatClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewChatClient creates a chat client for the openai or groq provider
func NewChatClient(cfg *config.LLMConfig) (*ChatClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("llm api key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	model := defaultOpenAIModel
	if cfg.Provider == config.ProviderGroq {
		clientCfg.BaseURL = groqBaseURL
		model = defaultGroqModel
	}
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &ChatClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// GenerateJSON sends the prompt in JSON mode and returns the assistant content
func (c *ChatClient) GenerateJSON(ctx context.Context, prompt Prompt) (*Completion, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: prompt.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt.User})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty response from chat completion")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, errors.New("chat completion returned empty content")
	}

	model := resp.Model
	if model == "" {
		model = c.model
	}
	return &Completion{Text: content, Model: model}, nil
}

// Model returns the configured model name
func (c *ChatClient) Model() string {
	return c.model
}

// WhisperClient transcribes audio with the OpenAI audio API
type WhisperClient struct {
	client *openai.Client
	model  string
}

// NewWhisperClient creates a Whisper transcriber
func NewWhisperClient(apiKey string, cfg *config.TranscriptionConfig) (*WhisperClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("transcription api key is required")
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &WhisperClient{client: openai.NewClientWithConfig(clientCfg), model: model}, nil
}

// Transcribe uploads the audio and returns text with duration and language
func (w *WhisperClient) Transcribe(ctx context.Context, audio io.Reader, fileName string) (*Transcription, error) {
	if fileName == "" {
		fileName = "recording.webm"
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: fileName,
		Reader:   audio,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("whisper transcription: %w", err)
	}

	return &Transcription{
		Text:            strings.TrimSpace(resp.Text),
		DurationSeconds: resp.Duration,
		Language:        resp.Language,
	}, nil
}
