package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Set stores key=value in the TOML file at configPath, keeping any other
// keys already present. The file and its directory are created as needed.
func Set(fsys types.FS, configPath, key, value string) error {
	return update(fsys, configPath, key, func(values map[string]interface{}) {
		values[key] = value
	})
}

// Unset removes key from the TOML file at configPath
func Unset(fsys types.FS, configPath, key string) error {
	return update(fsys, configPath, key, func(values map[string]interface{}) {
		delete(values, key)
	})
}

func update(fsys types.FS, configPath, key string, mutate func(map[string]interface{})) error {
	if !IsSettableKey(key) {
		return errors.Newf(errors.ErrInvalidInput, "unknown setting %q (known: %s)",
			key, strings.Join(SettableKeys(), ", ")).WithDetail("key", key)
	}

	values, err := readValues(fsys, configPath)
	if err != nil {
		return err
	}
	mutate(values)

	data, err := toml.Marshal(values)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode configuration")
	}

	if err := fsys.MkdirAll(filepath.Dir(configPath), fs.FileMode(0755)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create %s", filepath.Dir(configPath))
	}
	if err := fsys.WriteFile(configPath, data, fs.FileMode(0644)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", configPath).
			WithDetail("path", configPath)
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", configPath).
		Str("key", key).
		Strs("keys", sortedKeys(values)).
		Msg("Configuration file updated")
	return nil
}

func readValues(fsys types.FS, configPath string) (map[string]interface{}, error) {
	values := make(map[string]interface{})

	data, err := fsys.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", configPath)
	}

	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", configPath).
			WithDetail("path", configPath)
	}
	return values, nil
}

func sortedKeys(values map[string]interface{}) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
