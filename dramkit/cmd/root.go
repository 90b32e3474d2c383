// Package cmd provides the command-line interface for dramkit.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/dramkit/config"
	"github.com/sarchlab/dramkit/idgen"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var cfg = config.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dramkit",
	Short: "dramkit inspects DRAM addresses and memory traces.",
	Long: `dramkit inspects DRAM addresses and memory traces. It extracts ` +
		`bit fields from addresses and converts trace files into ` +
		`transactions, optionally recording them into a SQLite database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")

		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}

		cfg = loaded
		if cfg.ParallelID {
			idgen.UseParallel()
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env",
		"File to load environment variables from")
}

// exitFunc runs the atexit handlers, flushing open recordings, and
// terminates the process.
var exitFunc = atexit.Exit

// Execute adds all child commands to the root command and sets flags
// appropriately. Exit handlers run whether or not the command succeeds.
func Execute() {
	code := 0
	if err := rootCmd.Execute(); err != nil {
		code = 1
	}

	exitFunc(code)
}

func parseUint(arg, name string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(arg, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}

	return v, nil
}
