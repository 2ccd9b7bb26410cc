package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/cp4-practice/internal/config"
)

var flagConfigForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml to the current directory",
		RunE:  runConfigInit,
	}

	cmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing config file")

	return cmd
}

// runConfigInit is the config init command logic
func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "config.yaml"

	if !flagConfigForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
