// Package opener hands created files and template folders over to the
// user's tools. Files go to the configured editor, then $VISUAL, then
// $EDITOR, then the platform opener. Folders go to the configured window
// command, then the platform opener.
package opener

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner executes a command. When attach is true the command shares the
// terminal and Runner waits for it to exit.
type Runner func(name string, args []string, attach bool) error

// Opener implements types.Opener
type Opener struct {
	editor        string
	windowCommand string

	goos   string
	getenv func(string) string
	run    Runner
	logger zerolog.Logger
}

// New creates an Opener. Empty editor or windowCommand fall back to the
// environment and the platform opener.
func New(editor, windowCommand string) *Opener {
	return &Opener{
		editor:        editor,
		windowCommand: windowCommand,
		goos:          runtime.GOOS,
		getenv:        os.Getenv,
		run:           execRunner,
		logger:        logging.GetLogger("opener"),
	}
}

// OpenFile opens path in an editor
func (o *Opener) OpenFile(path string) error {
	argv, attach, err := o.fileCommand(path)
	if err != nil {
		return err
	}
	return o.exec(argv, attach, path)
}

// OpenFolder opens path as a new window
func (o *Opener) OpenFolder(path string) error {
	var argv []string
	if fields := strings.Fields(o.windowCommand); len(fields) > 0 {
		argv = append(fields, path)
	} else {
		platform, err := platformOpener(o.goos)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOpen, "cannot open %s", path).WithDetail("path", path)
		}
		argv = append(platform, path)
	}
	return o.exec(argv, false, path)
}

// fileCommand picks the command used for files. Editors share the terminal,
// the platform opener is detached.
func (o *Opener) fileCommand(path string) ([]string, bool, error) {
	for _, candidate := range []string{o.editor, o.getenv("VISUAL"), o.getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return append(fields, path), true, nil
		}
	}

	platform, err := platformOpener(o.goos)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrOpen, "cannot open %s", path).WithDetail("path", path)
	}
	return append(platform, path), false, nil
}

func (o *Opener) exec(argv []string, attach bool, path string) error {
	o.logger.Debug().Strs("command", argv).Bool("attach", attach).Msg("Opening")

	if err := o.run(argv[0], argv[1:], attach); err != nil {
		return errors.Wrapf(err, errors.ErrOpen, "failed to open %s with %s", path, argv[0]).
			WithDetail("path", path).
			WithDetail("command", strings.Join(argv, " "))
	}
	return nil
}

// platformOpener returns the desktop opener command for goos
func platformOpener(goos string) ([]string, error) {
	switch goos {
	case "windows":
		return []string{"explorer"}, nil
	case "darwin":
		return []string{"open"}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open"}, nil
	default:
		return nil, errors.Newf(errors.ErrOpen, "unsupported operating system: %s", goos)
	}
}

func execRunner(name string, args []string, attach bool) error {
	cmd := exec.Command(name, args...)
	if attach {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
