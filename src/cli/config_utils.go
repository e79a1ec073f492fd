package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"script-bridge/src/config"
)

// resolveConfigPath returns the --config flag value or the default path.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetDefaultConfigPath()
}

func runConfigGenerateCmd(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	if err := config.GenerateDefaultConfig(path); err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}
	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}

func runConfigValidateCmd(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	if _, err := config.LoadConfig(path); err != nil {
		return err
	}
	fmt.Printf("Configuration %s is valid\n", path)
	return nil
}

func runConfigShowCmd(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
