package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"kantan-bindgen/pkg/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [flags] [directory]",
	Short: "Create a " + config.FileName + " configuration file",
	Long: `Create a ` + config.FileName + ` configuration file with the default llvm-sys
sources, fetch settings and logging options. Edit the sources list to bind
against a different llvm-sys revision or local copies of the files.

Examples:
  # Initialize in the current directory
  kantan-bindgen init

  # Initialize with local sources and an output file
  kantan-bindgen init --source src/core.rs --source src/target.rs --output llvm.kan build/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var (
	initSources []string
	initOutput  string
	overwrite   bool
)

func init() {
	initCmd.Flags().StringArrayVarP(&initSources, "source", "s", nil, "Source path or URL (repeatable, default llvm-sys files)")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output file recorded in the configuration")
	initCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing "+config.FileName+" file if it exists")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) == 1 {
		targetDir = args[0]
	}

	info, err := os.Stat(targetDir)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", targetDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", targetDir)
	}

	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return fmt.Errorf("%s already exists, use --overwrite to replace it", configPath)
	}

	cfg := config.Default()
	if len(initSources) > 0 {
		cfg.Sources = initSources
	}
	cfg.Output = initOutput

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("✅ Created %s with %d source(s)\n", configPath, len(cfg.Sources))
	return nil
}
