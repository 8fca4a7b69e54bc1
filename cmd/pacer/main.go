package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/pacer/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pacer: %v\n", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	prefsPath  string
	format     string
	pretty     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pacer [DATE]",
		Short:         "Terminal dashboard for a training diary API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Open the dashboard on today's diary
  pacer

  # Open a month
  pacer 2026-06

  # Print a day as YAML
  pacer diary 2026-06-01 --format yaml

  # Try it against the built-in demo API
  pacer demo --addr 127.0.0.1:8000
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{ConfigPath: flags.configPath, PrefsPath: flags.prefsPath}
			if len(args) == 1 {
				opts.Date = args[0]
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "override pacer config path (default ~/.config/pacer/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "override preferences path (default ~/.config/pacer/prefs.toml)")

	cmd.AddCommand(newDiaryCmd(flags))
	cmd.AddCommand(newStatsCmd(flags))
	cmd.AddCommand(newDemoCmd())
	return cmd
}

func addOutputFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "json", "output format (json|yaml)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "pretty-print JSON output")
}

func (f *rootFlags) output(cmd *cobra.Command) app.Output {
	return app.Output{Writer: cmd.OutOrStdout(), Format: f.format, Pretty: f.pretty}
}

func newDiaryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary [DATE]",
		Short: "Print the diary records for a day (YYYY-MM-DD), month (YYYY-MM) or year (YYYY)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			return app.PrintDiary(cmd.Context(), flags.configPath, date, flags.output(cmd))
		},
	}
	addOutputFlags(cmd, flags)
	return cmd
}

func newStatsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "Print the statistics components",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.PrintStatistics(cmd.Context(), flags.configPath, flags.output(cmd))
		},
	}
	addOutputFlags(cmd, flags)
	return cmd
}

func newDemoCmd() *cobra.Command {
	opts := app.DemoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Serve an in-memory diary API to try pacer against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Ready = func(addr string) {
				fmt.Fprintf(cmd.OutOrStdout(), "demo api listening on http://%s\n", addr)
			}
			return app.ServeDemo(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", "127.0.0.1:8000", "listen address")
	cmd.Flags().StringVar(&opts.Token, "token", "", "require this bearer token (enables the login flow)")
	return cmd
}
