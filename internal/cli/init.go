package cli

import (
	"os"

	"github.com/dylan-marx/rangesum/internal/config"
	"github.com/dylan-marx/rangesum/internal/ui"
	"github.com/spf13/cobra"
)

type initFlags struct {
	Force       bool
	Strict      bool
	LogLevel    string
	Interactive bool
}

func (a *app) newInitCmd() *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:         "init [path]",
		Short:       "Create a config.yml with default settings",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return a.runInit(path, flags)
		},
	}

	def := config.DefaultGlobalConfig()
	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&flags.Strict, "strict", "s", def.Strict, "Default to strict parsing")
	cmd.Flags().StringVarP(&flags.LogLevel, "log-level", "l", def.LogLevel, "Default log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", def.Interactive, "Prompt for input when stdin is a terminal")
	return cmd
}

func (a *app) runInit(path string, flags initFlags) error {
	if path == "" {
		path = a.flags.Config
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg := config.GlobalConfig{
		Strict:      flags.Strict,
		LogLevel:    flags.LogLevel,
		Interactive: flags.Interactive,
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	if err := config.Write(path, cfg, flags.Force); err != nil {
		return err
	}

	a.logger.Success("Created " + ui.StylePath.Render(path))
	if data, err := os.ReadFile(path); err == nil {
		a.logger.Debug("Config\n" + ui.HighlightYAML(string(data)))
	}
	return nil
}
