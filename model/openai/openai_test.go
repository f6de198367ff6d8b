package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarmanper/researchcrew/model"
)

func TestNewBinding_Defaults(t *testing.T) {
	b := NewBinding()

	require.NotNil(t, b)
	assert.Equal(t, "openai", b.Info().Provider)
	assert.NotEmpty(t, b.Info().Name)
}

func TestNewBinding_Options(t *testing.T) {
	b := NewBinding(func(o *Options) {
		o.Model = "llama-3.3-70b-versatile"
		o.Temperature = 0.2
		o.BaseURL = "https://api.groq.com/openai/v1"
		o.APIKey = "gsk-test"
	})

	assert.Equal(t, "llama-3.3-70b-versatile", b.Info().Name)
	assert.Equal(t, 0.2, b.opts.Temperature)
}

func TestComplete_AgainstCompatibleServer(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "generated text"},
				"finish_reason": "stop"
			}]
		}`))
	}))
	defer server.Close()

	b := NewBinding(func(o *Options) {
		o.Model = "test-model"
		o.BaseURL = server.URL
		o.APIKey = "NA"
	})

	got, err := b.Complete(context.Background(), "a prompt")

	require.NoError(t, err)
	assert.Equal(t, "generated text", got)
	assert.Contains(t, gotPath, "chat/completions")
}

func TestComplete_ServerErrorBecomesGenerationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "model not found"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	b := NewBinding(func(o *Options) {
		o.Model = "missing-model"
		o.BaseURL = server.URL
		o.APIKey = "NA"
	})

	_, err := b.Complete(context.Background(), "a prompt")

	var genErr *model.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "openai", genErr.Provider)
	assert.Equal(t, "missing-model", genErr.Model)
}

func TestComplete_EmptyChoicesBecomesGenerationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	b := NewBinding(func(o *Options) {
		o.BaseURL = server.URL
		o.APIKey = "NA"
	})

	_, err := b.Complete(context.Background(), "a prompt")

	var genErr *model.GenerationError
	require.ErrorAs(t, err, &genErr)
}
