package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"subdomainCrawler/domain/adapters/sameDomainFilter"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "subdomainCrawler URL",
		Short: "Crawl every page on the host of URL",
		Long: `Given a starting URL, visits each URL with the same host and prints each
URL visited as well as the links found on it.

Only links whose host is exactly the host of URL are followed. The crawl ends
when no new page or link shows up for --timeout seconds, which is also the
deadline of every request.

Every option can also be set with a CRAWL_ environment variable,
e.g. CRAWL_CONCURRENCY=10, or in the file given by --config.`,
		Version:      Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, args)
			if err != nil {
				return err
			}

			logger, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := listenForCancellationAndAddToContext()
			defer cancel()

			summary, err := NewApp(cfg, logger, cmd.OutOrStdout()).Run(ctx)
			if err != nil {
				return fmt.Errorf("crawl: %w", err)
			}

			logger.Info().
				Uint64("pages", summary.PagesFetched).
				Uint64("failed", summary.FetchesFailed).
				Uint64("links", summary.LinksAccepted).
				Int64("peak_in_flight", summary.PeakInFlight).
				Dur("took", summary.Duration).
				Msg("done")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntP("concurrency", "c", 6, "concurrent http request limit")
	flags.IntP("timeout", "t", 5, "http request timeout and idle shutdown threshold in seconds")
	flags.Bool("strict", false, "only stop once no request or extraction is in flight")
	flags.Float64("rate", 0, "max requests started per second, 0 for no limit")
	flags.Int("queue-size", 64, "capacity of the url and page channels")
	flags.String("user-agent", "subdomainCrawler/"+Version, "User-Agent header sent with every request")
	flags.StringSlice("skip-extensions", sameDomainFilter.DefaultSkippedExtensions, "link extensions that are never fetched")
	flags.String("log-level", "warn", "trace, debug, info, warn or error")
	flags.String("log-file", "", "also write JSON logs to this rotated file")
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.BoolP("version", "V", false, "version for subdomainCrawler")

	_ = v.BindPFlags(flags)

	return cmd
}

func listenForCancellationAndAddToContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
