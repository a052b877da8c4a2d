package app

import "testing"

func TestLoggerConfig(t *testing.T) {
	tests := []struct {
		env      string
		encoding string
	}{
		{"production", "json"},
		{"development", "console"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := loggerConfig(tt.env)
			if cfg.Encoding != tt.encoding {
				t.Errorf("encoding = %q, want %q", cfg.Encoding, tt.encoding)
			}
			if cfg.InitialFields["service"] != ServiceName || cfg.InitialFields["env"] != tt.env {
				t.Errorf("initial fields: %v", cfg.InitialFields)
			}
		})
	}
}
