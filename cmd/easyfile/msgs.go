package easyfile

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Create files from per-extension templates"
	MsgNewShort           = "Create a file in the workspace from a template"
	MsgTemplatesShort     = "Open the template directory"
	MsgTemplatesListShort = "List templates and the extensions they serve"
	MsgTemplatesPathShort = "Print the template directory"
	MsgConfigShort        = "Show or change settings"
	MsgConfigShowShort    = "Show the effective settings"
	MsgConfigSetShort     = "Set a setting in the user config file"
	MsgConfigUnsetShort   = "Remove a setting from the user config file"
	MsgGuideShort         = "Show the template writing guide"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"

	// Status messages
	MsgFileCreated      = "Created %s"
	MsgFromTemplate     = "from %s"
	MsgEmptyFile        = "empty, no template for %s"
	MsgNoExtension      = "names without extension"
	MsgOpenedTemplates  = "Opened %s"
	MsgCreatedTemplates = "Created template directory %s"
	MsgEnsureFailed     = "Could not create %s: %v"
	MsgNoTemplates      = "No templates in %s"
	MsgTemplatesHeader  = "Templates in %s"
	MsgTemplateItem     = "%-24s %s"
	MsgSettingItem      = "%-14s = %s"
	MsgSettingUnset     = "(unset)"
	MsgSourcesHeader    = "Loaded from:"
	MsgNoSources        = "Loaded from: defaults only"
	MsgSettingSaved     = "Set %s in %s"
	MsgSettingRemoved   = "Removed %s from %s"
	MsgVersionFormat    = "easyfile %s (commit %s, built %s)"

	// Error messages
	MsgErrInitPaths     = "failed to initialize paths: %w"
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrNotTerminal   = "easyfile new needs an interactive terminal"
	MsgErrCreateFile    = "failed to create file: %w"
	MsgErrOpenTemplates = "failed to open templates: %w"
	MsgErrListTemplates = "failed to list templates: %w"
	MsgErrNoCommand     = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagWorkspace = "Workspace root (default: EASYFILE_WORKSPACE, git root, or current directory)"
	MsgFlagFormat    = "Output format: auto, term or text"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/templates-long.txt
	msgTemplatesLongRaw string
	MsgTemplatesLong    = strings.TrimSpace(msgTemplatesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw) + "\n"

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/guide.md
	MsgGuide string
)
