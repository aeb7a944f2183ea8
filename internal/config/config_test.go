package config

import (
	"os"
	"path/filepath"
	"testing"

	"schwarzschild/internal/sim"
)

func TestGetEnvFallback(t *testing.T) {
	const key = "SCHWARZSCHILD_TEST_UNSET"
	os.Unsetenv(key)
	if got := GetEnv(key, "fallback"); got != "fallback" {
		t.Fatalf("GetEnv = %q, want fallback", got)
	}
	t.Setenv(key, "set")
	if got := GetEnv(key, "fallback"); got != "set" {
		t.Fatalf("GetEnv = %q, want set", got)
	}
}

func TestLoadTuningEmptyPathGivesDefaults(t *testing.T) {
	got, err := LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got != sim.DefaultTuning() {
		t.Fatalf("empty path should return the defaults")
	}
}

func TestLoadTuningOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: 500\nscore_max: 250\n"), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}

	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.Gravity != 500 {
		t.Fatalf("gravity = %f, want 500", got.Gravity)
	}
	if got.ScoreMax != 250 {
		t.Fatalf("score_max = %d, want 250", got.ScoreMax)
	}
	// Fields not mentioned in the file keep their defaults.
	if got.PlanetStartRadius != sim.DefaultTuning().PlanetStartRadius {
		t.Fatalf("unrelated field changed: %f", got.PlanetStartRadius)
	}
}

func TestLoadTuningBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: [not a number"), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
