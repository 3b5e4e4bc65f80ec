// internal/config/config_test.go
package config

import (
	"testing"

	engine "github.com/C8d9/Fencing-Game/engine"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Nil(t, cfg.Personality)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFromEnv_AllSet(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"FENCING_SEED":        "42",
		"FENCING_PERSONALITY": "defensive",
		"FENCING_LOG_LEVEL":   "debug",
		"FENCING_LOG_FORMAT":  "JSON",
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.NotNil(t, cfg.Personality)
	assert.Equal(t, engine.PersonalityDefensive, *cfg.Personality)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"seed":        {"FENCING_SEED": "-1"},
		"personality": {"FENCING_PERSONALITY": "reckless"},
		"level":       {"FENCING_LOG_LEVEL": "loud"},
		"format":      {"FENCING_LOG_FORMAT": "xml"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envFrom(env))
			assert.Error(t, err)
		})
	}
}

func TestParsePersonality(t *testing.T) {
	p, err := ParsePersonality(" Unpredictable ")
	require.NoError(t, err)
	assert.Equal(t, engine.PersonalityUnpredictable, p)

	_, err = ParsePersonality("")
	assert.Error(t, err)
}
