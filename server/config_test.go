package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.DisableCORS)
	assert.Equal(t, DefaultPathPattern, cfg.PathPattern)
	assert.Nil(t, cfg.BinaryContentTypes)
}

func TestFromEnv_overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DISABLE_CORS", "true")
	t.Setenv("PATH_PATTERN", "/api/{resource}")
	t.Setenv("BINARY_TYPES", "image/png, application/wasm")

	cfg := FromEnv()

	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.DisableCORS)
	assert.Equal(t, "/api/{resource}", cfg.PathPattern)
	assert.Equal(t, []string{"image/png", "application/wasm"}, cfg.BinaryContentTypes)
}
