// Package paths provides centralized path handling for easyfile.
//
// It resolves the workspace root the folder navigator is bounded by and
// the XDG directories easyfile keeps its own files in:
//
//   - Data: $XDG_DATA_HOME/easyfile (global storage, holds templates/)
//   - Config: $XDG_CONFIG_HOME/easyfile (config.toml)
//   - State: $XDG_STATE_HOME/easyfile (easyfile.log), or $EASYFILE_STATE_DIR
//
// # Environment Variables
//
//   - EASYFILE_WORKSPACE: workspace root (default: git top-level, then cwd)
//   - EASYFILE_DATA_DIR: override the data directory
//   - EASYFILE_CONFIG_DIR: override the config directory
package paths
