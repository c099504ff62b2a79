package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"tap": map[string]any{
			"cooldownDuration": "60s",
		},
		"venues": map[string]any{
			"library": map[string]any{
				"streamUrl": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TAP_COOLDOWNDURATION", want: "tap.cooldownDuration"},
		{envKey: "VENUES_LIBRARY_STREAMURL", want: "venues.library.streamUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestTapConfig_ApplyDefaults(t *testing.T) {
	cfg := &TapConfig{}
	cfg.ApplyDefaults()

	if cfg.CooldownDuration != 60*time.Second {
		t.Fatalf("CooldownDuration = %v, want 60s", cfg.CooldownDuration)
	}
	if cfg.AlertDisplayDuration != 5*time.Second {
		t.Fatalf("AlertDisplayDuration = %v, want 5s", cfg.AlertDisplayDuration)
	}
	if cfg.ReferencePollInterval != 10*time.Second {
		t.Fatalf("ReferencePollInterval = %v, want 10s", cfg.ReferencePollInterval)
	}

	custom := &TapConfig{CooldownDuration: 2 * time.Second}
	custom.ApplyDefaults()
	if custom.CooldownDuration != 2*time.Second {
		t.Fatalf("custom CooldownDuration overwritten: %v", custom.CooldownDuration)
	}
}
