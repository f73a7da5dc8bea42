// Package cli wires the exepath resolver into a cobra command tree.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexcatdad/exepath/internal/config"
	"github.com/alexcatdad/exepath/internal/exepath"
	"github.com/alexcatdad/exepath/internal/log"
)

var (
	ErrUnknownPath      = errors.New("executable path unknown")
	ErrLogHandlerFailed = errors.New("log handler failed")
)

const longDesc = `Print the absolute path of the exepath binary itself, as reported by the
operating system.

On Linux, NetBSD and DragonFly the path is read from the procfs self-image
link and verified to be a regular file. On macOS it is queried from dyld.
Other platforms have no reliable mechanism and always report the path as
unknown (exit status 1).`

// result is the JSON shape printed with --output=json.
type result struct {
	Path      *string `json:"path"`
	Dir       *string `json:"dir"`
	Mechanism string  `json:"mechanism"`
}

// NewRootCmd returns the exepath command with all subcommands attached.
func NewRootCmd(version string) *cobra.Command {
	var (
		cfg     *config.Config
		dirOnly bool
	)

	cmd := &cobra.Command{
		Use:           "exepath",
		Short:         "Print the absolute path of the running executable",
		Long:          longDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	config.AddFlags(cmd.PersistentFlags())
	cmd.Flags().BoolVarP(&dirOnly, "dir", "d", false, "Print the directory containing the executable instead")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cc.Flags())
		if err != nil {
			return err
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}
		logger := slog.New(h)
		slog.SetDefault(logger)
		exepath.SetLogger(logger.With("mechanism", exepath.Mechanism()))

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, _ []string) error {
		p, ok := exepath.Resolve()
		slog.Debug("resolved executable path", "path", p, "ok", ok)

		if cfg.Output == config.OutputJSON {
			if err := writeJSON(cc, p, ok); err != nil {
				return err
			}
		} else if ok {
			if dirOnly {
				p = filepath.Dir(p)
			}
			fmt.Fprintln(cc.OutOrStdout(), p)
		}

		if !ok {
			return ErrUnknownPath
		}
		return nil
	}

	cmd.AddCommand(newDoctorCmd(), newVersionCmd(version))

	return cmd
}

func writeJSON(cc *cobra.Command, p string, ok bool) error {
	res := result{Mechanism: exepath.Mechanism()}
	if ok {
		dir := filepath.Dir(p)
		res.Path = &p
		res.Dir = &dir
	}

	enc := json.NewEncoder(cc.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the exepath CLI",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			fmt.Fprintf(cc.OutOrStdout(), "exepath version %s\n", version)
		},
	}
}
