package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mysql": map[string]any{
			"userName": "root",
			"database": "postboard",
		},
		"auth": map[string]any{
			"tokenTTL":   "30m",
			"bcryptCost": 10,
		},
		"cache": map[string]any{
			"listingTTL": "300s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MYSQL_USERNAME", want: "mysql.userName"},
		{envKey: "MYSQL_DATABASE", want: "mysql.database"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "CACHE_LISTINGTTL", want: "cache.listingTTL"},
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

func TestMySQLConfig_DSN(t *testing.T) {
	cfg := &MySQLConfig{
		Host:     "db.internal",
		Port:     3307,
		UserName: "svc",
		Password: "secret",
		Database: "postboard",
	}

	want := "svc:secret@tcp(db.internal:3307)/postboard?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
