package simulation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/behavior"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	ws, err := cfg.WanderSettings()
	if err != nil {
		t.Fatalf("WanderSettings() error = %v", err)
	}
	if ws.Offset != behavior.WanderOffsetTangent {
		t.Errorf("default wander offset = %v; want tangent", ws.Offset)
	}
	if cfg.NumBoids <= 0 || cfg.TicksPerSecond <= 0 || cfg.SnapshotBuffer <= 0 {
		t.Errorf("default config has a non positive count: %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "json overrides defaults",
			file:    "config.json",
			content: `{"numBoids": 3, "maxSpeed": 2.5, "wanderOffset": "sine"}`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.NumBoids != 3 || cfg.MaxSpeed != 2.5 || cfg.WanderOffset != "sine" {
					t.Errorf("overrides not applied: %+v", cfg)
				}
				if cfg.WorldWidth != DefaultConfig().WorldWidth {
					t.Errorf("missing key lost its default: worldWidth = %v", cfg.WorldWidth)
				}
			},
		},
		{
			name:    "yaml overrides defaults",
			file:    "config.yaml",
			content: "numBoids: 12\nseed: 7\nfleeRadius: 40.5\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.NumBoids != 12 || cfg.Seed != 7 || cfg.FleeRadius != 40.5 {
					t.Errorf("overrides not applied: %+v", cfg)
				}
			},
		},
		{
			name:    "empty object keeps defaults",
			file:    "config.json",
			content: `{}`,
			check: func(t *testing.T, cfg *Config) {
				if *cfg != *DefaultConfig() {
					t.Errorf("got %+v; want defaults", cfg)
				}
			},
		},
		{
			name:    "unknown key is rejected",
			file:    "config.json",
			content: `{"numBoidz": 3}`,
			wantErr: "config validation failed",
		},
		{
			name:    "out of range value is rejected",
			file:    "config.yml",
			content: "brakeFactor: 1.5\n",
			wantErr: "config validation failed",
		},
		{
			name:    "bad wander offset is rejected",
			file:    "config.json",
			content: `{"wanderOffset": "cosine"}`,
			wantErr: "config validation failed",
		},
		{
			name:    "malformed json",
			file:    "config.json",
			content: `{"numBoids": `,
			wantErr: "failed to decode config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			cfg, err := LoadConfig(path, "")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v; want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), "")
	if err == nil || !strings.Contains(err.Error(), "failed to open config file") {
		t.Errorf("LoadConfig() error = %v; want a file error", err)
	}
}

func TestLoadConfig_ExternalSchema(t *testing.T) {
	schema := writeFile(t, "strict.schema.json",
		`{"type": "object", "properties": {"numBoids": {"type": "integer", "maximum": 5}}}`)

	ok := writeFile(t, "ok.json", `{"numBoids": 5}`)
	if _, err := LoadConfig(ok, schema); err != nil {
		t.Errorf("LoadConfig() error = %v", err)
	}

	tooMany := writeFile(t, "many.json", `{"numBoids": 6}`)
	if _, err := LoadConfig(tooMany, schema); err == nil {
		t.Error("LoadConfig() accepted a value the external schema forbids")
	}

	if _, err := LoadConfig(ok, filepath.Join(t.TempDir(), "missing.schema.json")); err == nil ||
		!strings.Contains(err.Error(), "failed to compile schema") {
		t.Errorf("LoadConfig() error = %v; want a schema error", err)
	}
}

func TestConfig_Box(t *testing.T) {
	cfg := &Config{WorldWidth: 10, WorldHeight: 20, WorldDepth: 30}
	if got := cfg.Center(); got.X != 5 || got.Y != 10 || got.Z != 15 {
		t.Errorf("Center() = %s", got)
	}
	if got := cfg.Bounds(); got.X != 10 || got.Y != 20 || got.Z != 30 {
		t.Errorf("Bounds() = %s", got)
	}
}
