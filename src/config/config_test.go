package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaultConfig_AllCapabilitiesEnabled(t *testing.T) {
	config := GetDefaultConfig()

	if config.Script == nil {
		t.Fatal("Expected script config to be included by default, but it was nil")
	}

	if !config.Script.Diagnostics {
		t.Error("Expected diagnostics to be enabled by default")
	}
	if !config.Script.Hover {
		t.Error("Expected hover to be enabled by default")
	}
	if !config.Script.Symbols {
		t.Error("Expected symbols to be enabled by default")
	}
	if !config.Script.Completions {
		t.Error("Expected completions to be enabled by default")
	}
}

func TestSaveAndLoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := &Config{
		Script: &ScriptConfig{
			Diagnostics: true,
			Hover:       false,
			Symbols:     true,
			Completions: false,
		},
	}

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if *loaded.Script != *original.Script {
		t.Errorf("Expected loaded script config %+v, got %+v", *original.Script, *loaded.Script)
	}
}

func TestLoadConfig_MissingScriptSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for config without script section, got nil")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file, got nil")
	}
}

func TestGenerateDefaultConfig_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	if err := GenerateDefaultConfig(path); err != nil {
		t.Fatalf("GenerateDefaultConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !loaded.Script.Diagnostics {
		t.Error("Expected generated config to enable diagnostics")
	}
}
