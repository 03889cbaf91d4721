package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/adrg/xdg"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// reads a configuration file, `name` should come with a file extension,
// it will automatically be lopped off to produce the other extensions.
// this function will merge the following files, where higher number is more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
func ReadConfig[T any](name string) (T, error) {
	var out T
	allNotFound := true

	dirname := filepath.Dir(name)
	basename := filepath.Base(name)
	prefixname, ext := splitExt(basename)

	defaultFile, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(defaultFile) > 0 {
		err = json5.Unmarshal(defaultFile, &out)
		if err != nil {
			return out, fmt.Errorf("parse %s: %w", name, err)
		}
		allNotFound = false
	}

	localFilepath := filepath.Join(
		dirname,
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)
	localFile, err := os.ReadFile(localFilepath)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(localFile) > 0 {
		var override T
		err = json5.Unmarshal(localFile, &override)
		if err != nil {
			return out, fmt.Errorf("parse %s: %w", localFilepath, err)
		}
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Debug("merging config with local overrides", "local", localFilepath)
		allNotFound = false
	}

	if allNotFound {
		return out, os.ErrNotExist
	}

	return out, nil
}

// ReadConfig but it recursively goes up the filesystem until the root
// to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var defaultOut T

	current, err := os.Getwd()
	if err != nil {
		return defaultOut, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return defaultOut, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return defaultOut, os.ErrNotExist
		}
		current = parent
	}
}

// ReadUserConfig reads `name` from the working directory, falling back to
// $XDG_CONFIG_HOME/<app>/<name>.
func ReadUserConfig[T any](app, name string) (T, error) {
	config, err := ReadConfig[T](name)
	if !os.IsNotExist(err) {
		return config, err
	}
	return ReadConfig[T](filepath.Join(xdg.ConfigHome, app, name))
}

// ReadUserConfigOnto is ReadUserConfig with the files decoded on top of
// defaults, so every key a file sets wins over the default, zero values
// included. Keys no file mentions keep their default.
func ReadUserConfigOnto[T any](app, name string, defaults T) (T, error) {
	config := defaults
	err := readOnto(name, &config)
	if !os.IsNotExist(err) {
		return config, err
	}
	config = defaults
	err = readOnto(filepath.Join(xdg.ConfigHome, app, name), &config)
	if err != nil {
		return defaults, err
	}
	return config, nil
}

// readOnto decodes <name>.<ext> and then <name>.local.<ext> into out.
// It returns os.ErrNotExist when neither file exists.
func readOnto[T any](name string, out *T) error {
	dirname := filepath.Dir(name)
	prefixname, ext := splitExt(filepath.Base(name))
	localFilepath := filepath.Join(
		dirname,
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)

	allNotFound := true
	for _, path := range []string{name, localFilepath} {
		contents, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		allNotFound = false
		if len(contents) == 0 {
			continue
		}
		err = json5.Unmarshal(contents, out)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		slog.Debug("read config", "file", path)
	}

	if allNotFound {
		return os.ErrNotExist
	}
	return nil
}
