// Command sicheck is the CLI driver for the SI checker (spec.md §4.16):
// it owns everything spec.md keeps out of the core — loading, rendering,
// logging and process exit codes — and calls into sicheck.Verify for the
// decision itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sicheck",
		Short: "Offline Snapshot Isolation history checker",
		Long: `sicheck decides whether an observed transactional history satisfies
Snapshot Isolation, and on a violation prints the conflicting known edges
and residual constraints that witness it.`,
		SilenceUsage: true,
	}

	root.AddCommand(newVerifyCmd())
	root.AddCommand(newConfigCmd())
	return root
}
