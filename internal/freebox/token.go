package freebox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appToken is what gets persisted once the user has granted access on the
// Freebox front panel.
type appToken struct {
	AppToken string        `yaml:"app_token"`
	TrackID  int           `yaml:"track_id"`
	AppDesc  AppDescriptor `yaml:"app_desc"`
}

// loadToken returns nil, nil when the file does not exist yet.
func loadToken(path string) (*appToken, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var tok appToken
	if err := yaml.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token file %s: %w", path, err)
	}
	if tok.AppToken == "" {
		return nil, nil
	}
	return &tok, nil
}

func saveToken(path string, tok *appToken) error {
	data, err := yaml.Marshal(tok)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o600)
}
