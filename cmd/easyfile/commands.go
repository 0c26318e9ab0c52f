package easyfile

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/easyfile/internal/version"
	"github.com/arthur-debert/easyfile/pkg/commands/createfile"
	"github.com/arthur-debert/easyfile/pkg/commands/opentemplates"
	"github.com/arthur-debert/easyfile/pkg/config"
	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/filesystem"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/paths"
	"github.com/arthur-debert/easyfile/pkg/prompt"
	"github.com/arthur-debert/easyfile/pkg/templates"
	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/arthur-debert/easyfile/pkg/ui"
	"github.com/arthur-debert/easyfile/pkg/ui/output/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps replaces the interactive collaborators of the commands. Nil fields
// get the terminal prompter and the configured opener.
type Deps struct {
	Prompter types.Prompter
	Opener   types.Opener
	Ensurer  types.DirEnsurer
}

type globalOptions struct {
	verbosity int
	workspace string
	format    string

	// resolved once before any command runs
	paths paths.Paths
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(Deps{})
}

func newRootCmd(deps Deps) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "easyfile",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logFile := ""
			if p, err := paths.New(opts.workspace); err == nil {
				opts.paths = p
				logFile = p.LogFilePath()
			}
			logging.SetupLogger(opts.verbosity, logFile)
			format, err := ui.ParseFormat(opts.format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}
			ui.ApplyFormat(format, os.Stdout)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", MsgFlagWorkspace)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newNewCmd(opts, deps))
	rootCmd.AddCommand(newTemplatesCmd(opts, deps))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// initPaths resolves the workspace and easyfile directories, warning when
// the current directory is used as a fallback.
func initPaths(cmd *cobra.Command, opts *globalOptions) (paths.Paths, error) {
	p := opts.paths
	if p == nil {
		var err error
		if p, err = paths.New(opts.workspace); err != nil {
			return nil, fmt.Errorf(MsgErrInitPaths, err)
		}
		opts.paths = p
	}

	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.WorkspaceRoot())
	}
	return p, nil
}

// loadEnv resolves paths and loads the configuration for a command run
func loadEnv(cmd *cobra.Command, opts *globalOptions) (paths.Paths, *config.Config, error) {
	p, err := initPaths(cmd, opts)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(p)
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return p, cfg, nil
}

func newNewCmd(opts *globalOptions, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "new",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}

			prompter := deps.Prompter
			if prompter == nil {
				if !ui.IsInteractive() {
					return errors.New(errors.ErrPrompt, MsgErrNotTerminal)
				}
				prompter = prompt.NewPterm()
			}

			result, err := createfile.CreateFile(createfile.CreateFileOptions{
				Paths:    p,
				Config:   cfg,
				Prompter: prompter,
				Opener:   deps.Opener,
			})
			if result != nil && result.File != nil {
				printCreated(cmd.OutOrStdout(), result.File)
			}
			if err != nil {
				if errors.IsErrorCode(err, errors.ErrNoWorkspace) {
					return err
				}
				return fmt.Errorf(MsgErrCreateFile, err)
			}
			if result.Cancelled {
				log.Info().Msg("File creation cancelled")
			}
			return nil
		},
	}
}

func printCreated(out io.Writer, file *createfile.Materialized) {
	ext := templates.Extension(file.Path)
	if ext == "" {
		ext = MsgNoExtension
	}
	source := styles.Render("Muted", fmt.Sprintf(MsgEmptyFile, ext))
	if file.Template != "" {
		source = styles.Render("Muted", fmt.Sprintf(MsgFromTemplate, file.Template))
	}
	fmt.Fprintf(out, "%s %s\n", styles.Render("Success", fmt.Sprintf(MsgFileCreated, file.Path)), source)
}

func newTemplatesCmd(opts *globalOptions, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}

			result, err := opentemplates.OpenTemplates(opentemplates.OpenTemplatesOptions{
				Paths:   p,
				Config:  cfg,
				Ensurer: deps.Ensurer,
				Opener:  deps.Opener,
			})
			if result != nil {
				switch {
				case result.EnsureErr != nil:
					fmt.Fprintln(cmd.ErrOrStderr(), styles.Render("Warning", fmt.Sprintf(MsgEnsureFailed, result.Dir, result.EnsureErr)))
				case result.Ensure == types.EnsureCreated:
					fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgCreatedTemplates, result.Dir)))
				}
			}
			if err != nil {
				return fmt.Errorf(MsgErrOpenTemplates, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgOpenedTemplates+"\n", result.Dir)
			return nil
		},
	}

	cmd.AddCommand(newTemplatesListCmd(opts))
	cmd.AddCommand(newTemplatesPathCmd(opts))
	return cmd
}

func newTemplatesListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgTemplatesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}

			dir := templates.Dir(cfg, p)
			found, err := templates.List(filesystem.NewOS(), dir)
			if err != nil {
				return fmt.Errorf(MsgErrListTemplates, err)
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, styles.Render("Muted", fmt.Sprintf(MsgNoTemplates, dir)))
				return nil
			}
			fmt.Fprintln(out, styles.Render("Header", fmt.Sprintf(MsgTemplatesHeader, dir)))
			for _, t := range found {
				fmt.Fprintln(out, styles.Render("Indent", fmt.Sprintf(MsgTemplateItem, t.Name, t.Serves())))
			}
			return nil
		},
	}
}

func newTemplatesPathCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgTemplatesPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), templates.Dir(cfg, p))
			return nil
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			settings := []struct{ key, value string }{
				{config.KeyTemplatesPath, cfg.TemplatesPath},
				{config.KeyEditor, cfg.Editor},
				{config.KeyWindowCommand, cfg.WindowCommand},
			}
			for _, s := range settings {
				value := s.value
				if value == "" {
					value = styles.Render("Muted", MsgSettingUnset)
				}
				fmt.Fprintf(out, MsgSettingItem+"\n", s.key, value)
			}

			if len(cfg.Sources) == 0 {
				fmt.Fprintln(out, styles.Render("Muted", MsgNoSources))
				return nil
			}
			fmt.Fprintln(out, styles.Render("Muted", MsgSourcesHeader))
			for _, source := range cfg.Sources {
				fmt.Fprintln(out, styles.Render("Indent", source))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     MsgConfigSetShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.SettableKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd, opts)
			if err != nil {
				return err
			}
			if err := config.Set(filesystem.NewOS(), p.ConfigFilePath(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgSettingSaved, args[0], p.ConfigFilePath())))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "unset <key>",
		Short:     MsgConfigUnsetShort,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.SettableKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd, opts)
			if err != nil {
				return err
			}
			if err := config.Unset(filesystem.NewOS(), p.ConfigFilePath(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgSettingRemoved, args[0], p.ConfigFilePath())))
			return nil
		},
	})

	return cmd
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			terminal := false
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				terminal = ui.DetectFormat(f) == ui.FormatTerminal
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(MsgGuide, terminal, 0))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat+"\n", version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
