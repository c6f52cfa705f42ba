package lsenv_test

import (
	"strings"
	"testing"

	"github.com/basewarphq/cdklocal/lsenv"
	"go.uber.org/zap/zapcore"
)

func TestParseSettingsFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		environ     map[string]string
		want        lsenv.Settings
		wantErr     bool
		errContains string
	}{
		{
			name:    "defaults",
			environ: map[string]string{},
			want:    lsenv.DefaultSettings(),
		},
		{
			name:    "ssl with true",
			environ: map[string]string{"USE_SSL": "true"},
			want:    lsenv.Settings{EdgePort: 4566, UseSSL: true, LogLevel: zapcore.InfoLevel},
		},
		{
			name:    "ssl with 1",
			environ: map[string]string{"USE_SSL": "1"},
			want:    lsenv.Settings{EdgePort: 4566, UseSSL: true, LogLevel: zapcore.InfoLevel},
		},
		{
			name:    "ssl only for exact values",
			environ: map[string]string{"USE_SSL": "TRUE"},
			want:    lsenv.DefaultSettings(),
		},
		{
			name:    "ssl with yes",
			environ: map[string]string{"USE_SSL": "yes"},
			want:    lsenv.DefaultSettings(),
		},
		{
			name: "all set",
			environ: map[string]string{
				"EDGE_PORT":           "4567",
				"AWS_ENVAR_ALLOWLIST": "AWS_PROFILE,AWS_REGION",
				"LOG_LEVEL":           "debug",
			},
			want: lsenv.Settings{
				EdgePort:  4567,
				AllowList: "AWS_PROFILE,AWS_REGION",
				LogLevel:  zapcore.DebugLevel,
			},
		},
		{
			name:        "port out of range",
			environ:     map[string]string{"EDGE_PORT": "0"},
			wantErr:     true,
			errContains: "EdgePort",
		},
		{
			name:        "port too large",
			environ:     map[string]string{"EDGE_PORT": "70000"},
			wantErr:     true,
			errContains: "at most 65535",
		},
		{
			name:        "port not a number",
			environ:     map[string]string{"EDGE_PORT": "edge"},
			wantErr:     true,
			errContains: "EdgePort",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := lsenv.ParseSettingsFrom(tt.environ)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error should contain %q, got: %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSettings_ProcessEnvironment(t *testing.T) {
	t.Setenv("EDGE_PORT", "4599")
	t.Setenv("USE_SSL", "1")

	got, err := lsenv.ParseSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.EdgePort != 4599 {
		t.Errorf("EdgePort: got %d, want 4599", got.EdgePort)
	}
	if got.Protocol() != "https" {
		t.Errorf("Protocol: got %q, want https", got.Protocol())
	}
}

func TestSettings_Endpoints(t *testing.T) {
	t.Parallel()
	s := lsenv.DefaultSettings()
	if got := s.EndpointURL(); got != "http://localhost.localstack.cloud:4566" {
		t.Errorf("EndpointURL: got %q", got)
	}
	if got := s.S3EndpointURL(); got != "http://s3.localhost.localstack.cloud:4566" {
		t.Errorf("S3EndpointURL: got %q", got)
	}
}
