package config

import (
	"os"
	"path/filepath"
	"testing"

	"readyou/internal/errors"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func clearKeyEnv(t *testing.T) {
	t.Helper()
	t.Setenv("READYOU_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
}

func TestLoad_NoConfigFound(t *testing.T) {
	clearKeyEnv(t)
	_, err := Load([]string{filepath.Join(t.TempDir(), "a"), filepath.Join(t.TempDir(), "b")})
	if err == nil {
		t.Fatal("Load should fail when no candidate dir has config.yaml")
	}
	if code := errors.CodeOf(err); code != errors.ConfigMissing {
		t.Errorf("error code = %s, want %s", code, errors.ConfigMissing)
	}
	if hint := errors.HintOf(err); hint == "" {
		t.Error("ConfigMissing should carry a hint")
	}
}

func TestLoad_FirstMatchingDirWins(t *testing.T) {
	clearKeyEnv(t)
	first := t.TempDir()
	second := t.TempDir()
	writeConfig(t, first, ConfigFileName, "openai:\n  model: model-from-first\n")
	writeConfig(t, second, ConfigFileName, "openai:\n  model: model-from-second\n")

	cfg, err := Load([]string{first, second})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.Model != "model-from-first" {
		t.Errorf("Model = %q, want model-from-first", cfg.OpenAI.Model)
	}
}

func TestLoad_SecretsMergeOverBase(t *testing.T) {
	clearKeyEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileName, "openai:\n  model: base-model\n  api_key: base-key\n")
	writeConfig(t, dir, SecretsFileName, "openai:\n  api_key: sk-secret\n")

	cfg, err := Load([]string{dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-secret" {
		t.Errorf("APIKey = %q, want sk-secret (secrets override base)", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "base-model" {
		t.Errorf("Model = %q, want base-model (untouched by secrets)", cfg.OpenAI.Model)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearKeyEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileName, "scan:\n  ignore:\n    - vendor/**\n")

	cfg, err := Load([]string{dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.Model != DefaultModel {
		t.Errorf("Model = %q, want default %q", cfg.OpenAI.Model, DefaultModel)
	}
	if cfg.OpenAI.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %d, want 120", cfg.OpenAI.TimeoutSeconds)
	}
	if len(cfg.Scan.Ignore) != 1 || cfg.Scan.Ignore[0] != "vendor/**" {
		t.Errorf("Scan.Ignore = %v, want [vendor/**]", cfg.Scan.Ignore)
	}
}

func TestLoad_EnvOverridesFileKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileName, "openai:\n  api_key: file-key\n")
	t.Setenv("READYOU_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := Load([]string{dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("APIKey = %q, want sk-from-env", cfg.OpenAI.APIKey)
	}
}

func TestLoad_MalformedConfig(t *testing.T) {
	clearKeyEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileName, "openai: [not: valid\n")

	_, err := Load([]string{dir})
	if err == nil {
		t.Fatal("Load should fail for malformed YAML")
	}
	if code := errors.CodeOf(err); code != errors.ConfigInvalid {
		t.Errorf("error code = %s, want %s", code, errors.ConfigInvalid)
	}
}

func TestValidate_APIKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid key", "sk-real-key", false},
		{"empty key", "", true},
		{"whitespace key", "   ", true},
		{"template placeholder", "YOUR-API-KEY-GOES-IN-SECRETS.YAML", true},
		{"docs placeholder", "your-actual-api-key-here", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.OpenAI.APIKey = tt.key
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if code := errors.CodeOf(err); code != errors.APIKeyInvalid {
					t.Errorf("error code = %s, want %s", code, errors.APIKeyInvalid)
				}
			}
		})
	}
}

func TestScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "read-you")

	if err := Scaffold(dir, false); err != nil {
		t.Fatalf("Scaffold failed: %v", err)
	}
	for _, name := range []string{ConfigFileName, TemplateFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	// Idempotent: a user-edited config survives a second scaffold
	custom := "openai:\n  model: my-model\n"
	writeConfig(t, dir, ConfigFileName, custom)
	if err := Scaffold(dir, false); err != nil {
		t.Fatalf("second Scaffold failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != custom {
		t.Error("Scaffold without force overwrote an existing config.yaml")
	}

	// Force overwrites
	if err := Scaffold(dir, true); err != nil {
		t.Fatalf("forced Scaffold failed: %v", err)
	}
	data, err = os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) == custom {
		t.Error("Scaffold with force left the old config.yaml in place")
	}
}

func TestScaffold_TemplateHoldsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	if err := Scaffold(dir, false); err != nil {
		t.Fatalf("Scaffold failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, TemplateFileName))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "YOUR-API-KEY-GOES-IN-SECRETS.YAML"
	if err := cfg.Validate(); err == nil {
		t.Error("placeholder written by Scaffold must be rejected by Validate")
	}
	if len(data) == 0 {
		t.Error("template should not be empty")
	}
}
