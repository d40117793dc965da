package main

import (
	"fmt"
	"path/filepath"

	"readyou/internal/config"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize read-you configuration",
	Long: `Creates the user configuration directory (~/.config/read-you) with a
default config.yaml and a secrets.yaml.template. Copy the template to
secrets.yaml and add your OpenAI API key.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"Overwrite existing config.yaml and secrets.yaml.template")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := configDirFlag
	if dir == "" {
		var err error
		dir, err = config.UserConfigDir()
		if err != nil {
			return err
		}
	}

	if err := config.Scaffold(dir, initForce); err != nil {
		return err
	}

	fmt.Println("read-you initialized.")
	fmt.Printf("Configuration at: %s\n", filepath.Join(dir, config.ConfigFileName))
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Copy %s to %s\n", config.TemplateFileName, config.SecretsFileName)
	fmt.Println("  2. Add your OpenAI API key to it")
	return nil
}
