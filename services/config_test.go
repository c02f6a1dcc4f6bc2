package services

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config := LoadConfig()

	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, "", config.Database.URL)
	assert.True(t, config.Database.Seed)
	assert.Equal(t, "silent", config.Database.LogLevel)
	assert.Equal(t, 10, config.Database.MaxIdleConns)
	assert.Equal(t, 100, config.Database.MaxOpenConns)
	assert.Equal(t, "", config.JWT.Secret)
	assert.Equal(t, "", config.CORS.AllowedOrigins)
	assert.False(t, config.Quiz.CorrectedMatching)
}

func TestLoadConfigFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("QUIZ_CORRECTED_MATCHING", "true")

	config := LoadConfig()

	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "env-secret", config.JWT.Secret)
	assert.True(t, config.Quiz.CorrectedMatching)
}
