package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Matching.DeltaMin != -5 || cfg.Matching.DeltaMax != 5 {
		t.Fatalf("unexpected default window: %d..%d", cfg.Matching.DeltaMin, cfg.Matching.DeltaMax)
	}
	if cfg.Matching.AdmissionPolicy != "strict" {
		t.Fatalf("unexpected default policy: %q", cfg.Matching.AdmissionPolicy)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatalf("config should not exist at %s", path)
	}
	if cfg.Matching.DeltaMax != 5 {
		t.Fatalf("defaults not applied: %+v", cfg.Matching)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmtidy.toml")
	content := `
[matching]
delta_min = -90
delta_max = 89
admission_policy = "Loose"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("config file should have been found")
	}
	if cfg.Matching.DeltaMin != -90 || cfg.Matching.DeltaMax != 89 {
		t.Fatalf("window not loaded: %+v", cfg.Matching)
	}
	if cfg.Matching.AdmissionPolicy != "loose" {
		t.Fatalf("policy not normalized: %q", cfg.Matching.AdmissionPolicy)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not normalized: %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsInvertedWindow(t *testing.T) {
	cfg := Default()
	cfg.Matching.DeltaMin = 10
	cfg.Matching.DeltaMax = -10
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted tolerance window must be rejected")
	}
}

func TestValidateRejectsUnknownPolicy(t *testing.T) {
	cfg := Default()
	cfg.Matching.AdmissionPolicy = "sometimes"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "admission_policy") {
		t.Fatalf("expected admission_policy error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("sample config should exist after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config must validate: %v", err)
	}
}
