package cmd

import (
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bleadv",
	Short: "Inspect BLE advertising data",
	Long: `bleadv decodes Bluetooth LE advertising and scan response payloads
into their individual advertising data structures.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			ctx := cmd.Context()
			l := logger.FromCtx(ctx).WithLevel(logger.LevelTrace)
			cmd.SetContext(logger.CtxWithLogger(ctx, l))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every dispatched record")
}
