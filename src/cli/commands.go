// Package cli provides the script-bridge command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"script-bridge/src/internal/common"
	versionpkg "script-bridge/src/internal/version"
)

// CLI Constants
const (
	CmdVersion        = "version"
	CmdConfig         = "config"
	CmdConfigGenerate = "generate"
	CmdConfigValidate = "validate"
	CmdConfigShow     = "show"
	FlagConfig        = "config"
)

var configPath string

// Root command
var rootCmd = &cobra.Command{
	Use:   "script-bridge",
	Short: "Script Bridge - editor intelligence for script fragments embedded in host documents",
	Long: `Script Bridge answers editor-intelligence queries (diagnostics, hover,
document symbols, completions) for script content embedded inside a larger
multi-language document, by bridging fragments to a whole-file language
analysis engine through virtual documents.

The bridge itself is embedded by a host runtime; this CLI manages its
configuration.

AVAILABLE COMMANDS:
  script-bridge config generate          # Write the default configuration file
  script-bridge config validate          # Validate a configuration file
  script-bridge config show              # Print the effective configuration
  script-bridge version                  # Show version information

Use 'script-bridge <command> --help' for detailed command information.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command definitions
var (
	versionCmd = &cobra.Command{
		Use:   CmdVersion,
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(versionpkg.GetFullVersionInfo())
		},
	}

	configCmd = &cobra.Command{
		Use:   CmdConfig,
		Short: "Manage script-bridge configuration",
	}

	configGenerateCmd = &cobra.Command{
		Use:   CmdConfigGenerate,
		Short: "Generate a default configuration file",
		RunE:  runConfigGenerateCmd,
	}

	configValidateCmd = &cobra.Command{
		Use:   CmdConfigValidate,
		Short: "Validate a configuration file",
		RunE:  runConfigValidateCmd,
	}

	configShowCmd = &cobra.Command{
		Use:   CmdConfigShow,
		Short: "Print the effective configuration",
		RunE:  runConfigShowCmd,
	}
)

func init() {
	configCmd.PersistentFlags().StringVar(&configPath, FlagConfig, "", "Path to config file")

	configCmd.AddCommand(configGenerateCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		common.CLILogger.Error("command failed: %v", err)
		return err
	}
	return nil
}
