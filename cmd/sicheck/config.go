package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/tsunaou/polysi-go/sicheck"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate sicheck tunables",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the default tunables as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := toml.Marshal(sicheck.DefaultConfig())
			if err != nil {
				return fmt.Errorf("sicheck: marshal default config: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a TOML tunables file and report whether it is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("sicheck: read %s: %w", args[0], err)
			}

			var cfg sicheck.Config
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("sicheck: parse %s: %w", args[0], err)
			}
			if cfg.StopThreshold < 0 || cfg.StopThreshold > 1 {
				return fmt.Errorf("sicheck: stop_threshold %v out of range [0,1]", cfg.StopThreshold)
			}

			fmt.Printf("%s: valid\n", args[0])
			return nil
		},
	}
}
