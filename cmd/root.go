package cmd

import (
	"fmt"
	"os"

	"kantan-bindgen/pkg/logger"

	"github.com/spf13/cobra"
)

// Version information
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "kantan-bindgen",
	Short: "Generate Kantan bindings from llvm-sys extern declarations",
	Long: `kantan-bindgen reads Rust sources containing extern "C" blocks of
LLVM C API declarations (as published by the llvm-sys crate), keeps the
whitelisted functions, and emits Kantan bindings: raw extern declarations
plus safe wrapper functions that convert between raw and safe types.

Declarations whose types cannot be mapped are skipped and listed at the end
of the output.`,
	Version:       getVersionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Config{
			Level:  logLevel,
			Format: logFormat,
			Output: os.Stderr,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kantan-bindgen %s\n", getVersionString())
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Date:    %s\n", date)
	},
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

func Execute() error {
	return rootCmd.Execute()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", getEnvOrDefault("BINDGEN_LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", getEnvOrDefault("BINDGEN_LOG_FORMAT", "text"), "Log format (text, json)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(whitelistCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
