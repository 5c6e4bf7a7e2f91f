package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/candidate-screening/pkg/config"
)

func TestChatClient_GenerateJSON(t *testing.T) {
	var got map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "chatcmpl-1",
			"model": "llama-3.3-70b-versatile",
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": " {\"overallScore\": 72} "}},
			},
		})
	}))
	defer ts.Close()

	client, err := NewChatClient(&config.LLMConfig{
		Provider:    config.ProviderGroq,
		APIKey:      "test-key",
		BaseURL:     ts.URL,
		Temperature: 0.7,
		MaxTokens:   512,
	})
	require.NoError(t, err)
	assert.Equal(t, defaultGroqModel, client.Model())

	out, err := client.GenerateJSON(context.Background(), Prompt{System: "you are a recruiter", User: "score this"})
	require.NoError(t, err)
	assert.Equal(t, `{"overallScore": 72}`, out.Text)
	assert.Equal(t, "llama-3.3-70b-versatile", out.Model)

	assert.Equal(t, defaultGroqModel, got["model"])
	format, ok := got["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
	messages, ok := got["messages"].([]interface{})
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestChatClient_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer ts.Close()

	client, err := NewChatClient(&config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.GenerateJSON(context.Background(), Prompt{User: "hi"})
	assert.Error(t, err)
}

func TestChatClient_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer ts.Close()

	client, err := NewChatClient(&config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.GenerateJSON(context.Background(), Prompt{User: "hi"})
	assert.Error(t, err)
}

func TestNewChatClient_RequiresKey(t *testing.T) {
	_, err := NewChatClient(&config.LLMConfig{Provider: config.ProviderOpenAI})
	assert.Error(t, err)
}

func TestWhisperClient_Transcribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "verbose_json", r.FormValue("response_format"))

		if _, header, err := r.FormFile("file"); assert.NoError(t, err) {
			assert.Equal(t, "question3.webm", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"task":"transcribe","language":"english","duration":12.5,"text":" I love talking to people. "}`))
	}))
	defer ts.Close()

	client, err := NewWhisperClient("k", &config.TranscriptionConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	out, err := client.Transcribe(context.Background(), strings.NewReader("webm-bytes"), "question3.webm")
	require.NoError(t, err)
	assert.Equal(t, "I love talking to people.", out.Text)
	assert.Equal(t, "english", out.Language)
	assert.InDelta(t, 12.5, out.DurationSeconds, 0.001)
}

func TestNewWhisperClient_RequiresKey(t *testing.T) {
	_, err := NewWhisperClient(" ", &config.TranscriptionConfig{})
	assert.Error(t, err)
}

func TestNewAssemblyAIClient_RequiresKey(t *testing.T) {
	_, err := NewAssemblyAIClient("")
	assert.Error(t, err)
}
