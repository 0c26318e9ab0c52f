// Package config handles configuration management for easyfile.
// Settings are layered from embedded defaults, the user config file, the
// workspace's .easyfile.toml and EASYFILE_* environment variables. They are
// read fresh on every command invocation; nothing is cached between runs.
package config
