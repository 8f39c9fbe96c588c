package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwin/tabwin/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Inspect the effective configuration and regenerate the JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print the merged configuration (file, environment, defaults) as JSON.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Regenerate the config JSON schema",
	Long:  `Write config.schema.json next to the config file for editor completion.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(app.Config)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if app.Manager != nil {
		if used := app.Manager.ConfigFileUsed(); used != "" {
			fmt.Println(used)
			return nil
		}
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	fmt.Printf("%s (not created yet)\n", configFile)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	return config.GenerateSchemaFile()
}
