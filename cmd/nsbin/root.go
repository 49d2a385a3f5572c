package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joshuapare/nsbin/internal/config"
	"github.com/joshuapare/nsbin/internal/logging"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string

	// Set up by setup() before every command
	cfg    = config.Default()
	logger = logging.Nop()
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
	keyColor  = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "nsbin",
	Short: "Rewrite the namespace slot of compiled modules",
	Long: `nsbin locates the namespace identifier inside a compiled module, checks
the reserved buffer that follows it, and rewrites that buffer with a new
namespace name. Every patch is recorded next to the module in <module>.ddNSi.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default $NSBIN_CONFIG or ~/.nsbin/config.yaml)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file and builds the logger and color settings.
func setup() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	level := cfg.Log.Level
	switch {
	case quiet:
		level = "error"
	case verbose:
		level = "debug"
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Pretty = cfg.Log.Pretty
	logCfg.NoColor = color.NoColor || !isTerminal(os.Stderr)
	logger = logging.NewWithComponent(logCfg, "nsbin")
	logger.Debug().Str("config", path).Msg("configuration loaded")
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printField prints an aligned "key: value" line if not in quiet mode
func printField(key string, value interface{}) {
	printInfo("  %s %v\n", keyColor.Sprintf("%-11s", key+":"), value)
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, errColor.Sprint("Error: ")+format, args...)
}

// printWarn prints a warning to stderr unless in quiet mode
func printWarn(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stderr, warnColor.Sprint("Warning: ")+format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// failJSON prints err as {"error": ...} in JSON mode and returns it
func failJSON(err error) error {
	if jsonOut {
		if jerr := printJSON(map[string]string{"error": err.Error()}); jerr != nil {
			return jerr
		}
	}
	return err
}

// commandLogger returns the CLI logger tagged with the command name.
func commandLogger(name string) zerolog.Logger {
	return logger.With().Str("command", name).Logger()
}
