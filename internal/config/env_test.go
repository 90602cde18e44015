package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CFG_STR", "value")
	t.Setenv("CFG_EMPTY", "")
	t.Setenv("CFG_INT", "42")
	t.Setenv("CFG_BAD_INT", "forty")
	t.Setenv("CFG_LIST", " a, ,b ")

	assert.Equal(t, "value", getEnv("CFG_STR", "x"))
	assert.Equal(t, "x", getEnv("CFG_EMPTY", "x"))
	assert.Equal(t, 42, getIntEnv("CFG_INT", 1))
	assert.Equal(t, 1, getIntEnv("CFG_BAD_INT", 1))
	assert.Equal(t, 42*time.Second, getSecondsEnv("CFG_INT", time.Minute))
	assert.Equal(t, time.Minute, getSecondsEnv("CFG_UNSET", time.Minute))
	assert.Equal(t, []string{"a", "b"}, getListEnv("CFG_LIST", nil))
	assert.Equal(t, []string{"*"}, getListEnv("CFG_UNSET", []string{"*"}))
}

func TestJudgeConfigDefaults(t *testing.T) {
	t.Setenv("JUDGE0_LANGUAGE_ID", "")
	t.Setenv("JUDGE0_HOST", "")

	cfg := NewJudgeConfig()
	assert.Equal(t, JavaLanguageID, cfg.LanguageID)
	assert.Equal(t, "judge0-ce.p.rapidapi.com", cfg.Host)

	t.Setenv("JUDGE0_LANGUAGE_ID", "71")
	assert.Equal(t, 71, NewJudgeConfig().LanguageID)
}

func TestSystemConfig(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_TTL_MIN", "")
	t.Setenv("HTTP_MAX_BODY_MB", "")

	cfg := NewSystemConfig()
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 15*time.Minute, cfg.JwtConfig.TTL)
	assert.Equal(t, int64(10<<20), cfg.ServerConfig.MaxBodyBytes)
}
