package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/datalux_backend/cmd/http"
	systemcmd "github.com/Alijeyrad/datalux_backend/cmd/system"
	"github.com/Alijeyrad/datalux_backend/pkg/logs"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "datalux",
	Short: "DataLux Consulting contact intake API.",
	Long: `DataLux receives contact form submissions from the DataLux Consulting website,
stores them in Postgres and alerts the team by email and Telegram.`,
	SilenceUsage: true,
	// Commands that read config replace this with logs.New.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logs.Default())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands. The file is optional.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
