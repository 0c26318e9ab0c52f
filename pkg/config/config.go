package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Setting keys
const (
	KeyTemplatesPath = "templatesPath"
	KeyEditor        = "editor"
	KeyWindowCommand = "windowCommand"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "EASYFILE_"

// envKeys maps environment variable names (without prefix) to setting keys
var envKeys = map[string]string{
	"TEMPLATES_PATH": KeyTemplatesPath,
	"EDITOR":         KeyEditor,
	"WINDOW_COMMAND": KeyWindowCommand,
}

// Config holds the effective easyfile settings
type Config struct {
	// TemplatesPath overrides the global template directory when set
	TemplatesPath string `koanf:"templatesPath"`
	// Editor opens newly created files
	Editor string `koanf:"editor"`
	// WindowCommand opens the template directory as a new window
	WindowCommand string `koanf:"windowCommand"`

	// Sources lists the config files that contributed, in load order
	Sources []string `koanf:"-"`
}

// SettableKeys returns the keys accepted by Set and Unset
func SettableKeys() []string {
	return []string{KeyTemplatesPath, KeyEditor, KeyWindowCommand}
}

// IsSettableKey reports whether key is a known setting
func IsSettableKey(key string) bool {
	for _, k := range SettableKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// Load builds the effective configuration for the given paths. Sources are
// applied in order, later ones winning:
//  1. embedded defaults
//  2. user config file (<config dir>/config.toml)
//  3. workspace config file (<workspace>/.easyfile.toml)
//  4. EASYFILE_* environment variables
func Load(p paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	var sources []string
	for _, path := range []string{p.ConfigFilePath(), p.WorkspaceConfigPath()} {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, path)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimSpaceHookFunc(),
				expandHomeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	logger.Debug().
		Strs("sources", sources).
		Str("templatesPath", cfg.TemplatesPath).
		Msg("Configuration loaded")

	return &cfg, nil
}

// trimSpaceHookFunc drops surrounding whitespace from string settings
func trimSpaceHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}

// expandHomeHookFunc expands a leading ~ in string settings
func expandHomeHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		return paths.ExpandHome(data.(string)), nil
	}
}
