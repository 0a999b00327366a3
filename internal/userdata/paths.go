package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/loadout-labs/loadout/internal/branding"
	"github.com/loadout-labs/loadout/internal/config"
)

// TemplatesDir is the payload directory name under the Loadout home.
const TemplatesDir = "templates"

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetUserdataRoot returns the path to the Loadout home directory.
// It checks the LOADOUT_HOME environment variable first,
// then falls back to ~/.loadout.
func GetUserdataRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetTemplatesRoot returns the template payload directory that init
// copies from. It checks the LOADOUT_TEMPLATES environment variable
// first, then the templates_root config key, then falls back to
// ~/.loadout/templates.
func GetTemplatesRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("TEMPLATES")); v != "" {
		return v, nil
	}
	if v := config.Get(config.KeyTemplatesRoot); v != "" {
		return v, nil
	}
	root, err := GetUserdataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, TemplatesDir), nil
}
