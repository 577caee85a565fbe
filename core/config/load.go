package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configFs := afero.NewBasePathFs(afero.NewOsFs(), path)
	configContents, err := afero.ReadFile(configFs, ConfigurationName)
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	out.configFs = configFs
	out.configDir = path
	return &out, nil
}

// LoadOrDefault loads the configuration from the directory, falling back to
// the built-in default if the directory hasn't been initialized.
func LoadOrDefault(path string) (*Configuration, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Initialize writes the default configuration to the directory. An existing
// configuration is left untouched.
func Initialize(path string, logger *log.Logger) error {
	if err := os.MkdirAll(path, 0700); err != nil {
		return err
	}

	configFs := afero.NewBasePathFs(afero.NewOsFs(), path)
	if _, err := configFs.Stat(ConfigurationName); err == nil {
		logger.Printf("Configuration already exists: %s", filepath.Join(path, ConfigurationName))
		return nil
	}

	logger.Printf("Writing configuration: %s", filepath.Join(path, ConfigurationName))
	return afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600)
}

// DefaultDir is the configuration directory used when none is given.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vsh")
	}
	return ".vsh"
}
