package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/nsbin/internal/config"
)

var configForce bool

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the nsbin config file",
	}
	initCmd := newConfigInitCmd()
	initCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(newConfigShowCmd(), initCmd)
	rootCmd.AddCommand(cmd)
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `The show command prints the configuration apply and locate start from:
the config file merged over the defaults.

Example:
  nsbin config show
  nsbin config show --config ./nsbin.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `The init command writes the effective configuration to --config, or to
$NSBIN_CONFIG / ~/.nsbin/config.yaml. An existing file is kept unless
--force is given.

Example:
  nsbin config init
  nsbin config init --config ./nsbin.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	}
}

func runConfigShow() error {
	if jsonOut {
		return printJSON(cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	printInfo("%s", data)
	return nil
}

func runConfigInit() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return failJSON(errors.New("no config path: set --config or $" + config.EnvPath))
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return failJSON(fmt.Errorf("config %s already exists (use --force to overwrite)", path))
	}

	if err := config.Save(path, cfg); err != nil {
		return failJSON(err)
	}
	logger.Debug().Str("config", path).Msg("configuration written")

	if jsonOut {
		return printJSON(map[string]interface{}{"path": path, "written": true})
	}
	printInfo("%s %s\n", okColor.Sprint("Wrote"), path)
	return nil
}
