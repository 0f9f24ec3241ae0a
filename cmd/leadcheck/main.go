package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/lead"
	"github.com/octobees/automatelabs-site/internal/logger"
	"github.com/octobees/automatelabs-site/internal/supabase"
)

type checkFlags struct {
	table   string
	message string
	dryRun  bool
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := checkFlags{}
	cmd := &cobra.Command{
		Use:   "leadcheck",
		Short: "Insert one test lead to verify the Supabase connection",
		Long: `Load the site configuration and insert a single test record into a
Supabase table, reporting whether the REST endpoint accepted it.

Examples:
  leadcheck
  leadcheck --table newsletter
  leadcheck --dry-run`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.table, "table", lead.TableCallbacks, "table to insert the test record into")
	cmd.Flags().StringVar(&flags.message, "message", "Connection check", "value of the query field")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the request instead of sending it")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 15*time.Second, "request timeout")
	return cmd
}

func runCheck(ctx context.Context, out io.Writer, cfg *config.Config, flags checkFlags) error {
	if missing := cfg.Supabase.Missing(); len(missing) > 0 {
		fmt.Fprintf(out, "Missing configuration: %v\n", missing)
		return supabase.ErrNotConfigured
	}
	fmt.Fprintf(out, "Target: %s\n", cfg.Supabase.Host())

	record := lead.CallbackRequest{
		Name:  "Test Script",
		Phone: "0000000000",
		Email: "test@example.com",
		Query: flags.message,
	}

	client := supabase.NewClient(cfg.Supabase, nil, logger.New(cfg.LogLevel, cfg.LogFormat))
	if flags.dryRun {
		req, err := client.NewRequest(ctx, flags.table, record)
		if err != nil {
			return err
		}
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n%s\n", req.Method, req.URL, body)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, flags.timeout)
	defer cancel()

	if err := client.Do(ctx, flags.table, record); err != nil {
		var statusErr *supabase.StatusError
		if errors.As(err, &statusErr) {
			fmt.Fprintf(out, "Insert rejected with status %d: %s\n", statusErr.StatusCode, statusErr.Message)
		} else {
			fmt.Fprintf(out, "Insert failed: %v\n", err)
		}
		return err
	}
	fmt.Fprintf(out, "Inserted test record into %s\n", flags.table)
	return nil
}
