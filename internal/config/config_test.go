package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"CLINIC_NAME", "STORE_NAME", "LOG_LEVEL", "LOG_FORMAT", "LOG_TIME_FORMAT", "LOG_OUTPUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "MediSure Clinic Billing", cfg.ClinicName)
	assert.Equal(t, "QuickMart Traders", cfg.StoreName)

	logCfg := cfg.GetLoggerConfig()
	assert.Equal(t, "warn", logCfg.Level)
	assert.Equal(t, "console", logCfg.Format)
	assert.Equal(t, "stderr", logCfg.Output)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CLINIC_NAME", "Riverside Clinic")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Riverside Clinic", cfg.ClinicName)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
		{"CLINIC_NAME", "   "},
		{"STORE_NAME", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
