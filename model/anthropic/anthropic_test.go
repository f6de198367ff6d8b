package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinding_Defaults(t *testing.T) {
	b := NewBinding()

	require.NotNil(t, b)
	assert.Equal(t, "anthropic", b.Info().Provider)
	assert.NotEmpty(t, b.Info().Name)
}

func TestNewBinding_Options(t *testing.T) {
	b := NewBinding(func(o *Options) {
		o.Model = "claude-3-5-haiku-20241022"
		o.Temperature = 0.1
		o.MaxTokens = 1024
		o.APIKey = "sk-ant-test"
	})

	assert.Equal(t, "claude-3-5-haiku-20241022", b.Info().Name)
	assert.Equal(t, 0.1, b.opts.Temperature)
	assert.Equal(t, int64(1024), b.opts.MaxTokens)
}
