package config

import (
	"os"
	"path/filepath"

	"readyou/internal/errors"

	"gopkg.in/yaml.v3"
)

// TemplateFileName is the secrets template written by Scaffold. The user
// copies it to secrets.yaml and fills in their key.
const TemplateFileName = "secrets.yaml.template"

// secretsTemplate documents the placeholder that Validate rejects.
type secretsTemplate struct {
	OpenAI struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"openai"`
}

// Scaffold writes a default config.yaml and secrets.yaml.template into dir,
// creating it if needed. Existing files are left alone unless force is set.
// It never touches an existing secrets.yaml.
func Scaffold(dir string, force bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.InternalError, "failed to create config directory", err)
	}

	cfg := DefaultConfig()
	cfgData, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.InternalError, "failed to marshal default config", err)
	}
	if err := writeUnlessPresent(filepath.Join(dir, ConfigFileName), cfgData, force); err != nil {
		return err
	}

	var tpl secretsTemplate
	tpl.OpenAI.APIKey = "YOUR-API-KEY-GOES-IN-SECRETS.YAML"
	tplData, err := yaml.Marshal(&tpl)
	if err != nil {
		return errors.Wrap(errors.InternalError, "failed to marshal secrets template", err)
	}
	return writeUnlessPresent(filepath.Join(dir, TemplateFileName), tplData, force)
}

func writeUnlessPresent(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.InternalError, "failed to write "+filepath.Base(path), err)
	}
	return nil
}
