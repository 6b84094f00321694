package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresPaystackKey(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYSTACK_SECRET_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, time.Second, cfg.Chat.ReplyDelay)
	assert.Empty(t, cfg.AI.AnthropicAPIKey)
	assert.Empty(t, cfg.AI.OpenAIAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_secret")
	t.Setenv("PORT", "8080")
	t.Setenv("CHAT_REPLY_DELAY", "250ms")
	t.Setenv("UPLOAD_DIR", "/tmp/store-uploads")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, "/tmp/store-uploads", cfg.Uploads.Dir)
}

func TestLoadRejectsBadReplyDelay(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_secret")
	t.Setenv("CHAT_REPLY_DELAY", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHAT_REPLY_DELAY")
}
