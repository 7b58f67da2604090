/*
Package main implements command-line functionality.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/vigo/cve2csv/internal/csvwriter"
	"github.com/vigo/cve2csv/internal/cve"
	"github.com/vigo/cve2csv/internal/httpclient"
	"github.com/vigo/cve2csv/internal/tlog"
	"github.com/vigo/cve2csv/internal/version"
)

const (
	defaultShowVersion = false
	defaultVerbose     = false
	defaultLogNoColor  = false
	defaultTimeout     = httpclient.DefaultTimeout

	fallbackOutputFile = "cve.csv"
)

// sentinel errors.
var (
	ErrKeywordRequired = errors.New("keyword is required")
)

// runConfig holds resolved invocation parameters.
type runConfig struct {
	keyword  string
	output   string
	endpoint string
	verbose  bool
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: cve2csv [-o output] [-v] keyword\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "searches the MITRE CVE database by keyword and writes matches to a CSV file.\n\n")
	flag.PrintDefaults()
}

func main() {
	vrs := flag.Bool("version", defaultShowVersion, "display version information")
	timeout := flag.Duration("timeout", defaultTimeout, "http request timeout")
	logNoColor := flag.Bool("nocolor", defaultLogNoColor, "disable log colors")

	var output string
	flag.StringVar(&output, "output", "", "output CSV filename (default: derived from keyword)")
	flag.StringVar(&output, "o", "", "short form of -output")

	var verbose bool
	flag.BoolVar(&verbose, "verbose", defaultVerbose, "enable progress diagnostics on stderr")
	flag.BoolVar(&verbose, "v", defaultVerbose, "short form of -verbose")

	flag.Usage = usage
	flag.Parse()

	if *vrs {
		fmt.Fprintf(flag.CommandLine.Output(), "%s\n", version.Version)

		return
	}

	cfg, err := resolveConfig(flag.Args(), output, verbose)
	if err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	logLevel := ""
	if cfg.verbose {
		logLevel = "info"
	}
	logger := tlog.New(logLevel, *logNoColor)

	client, err := httpclient.New(httpclient.WithTimeout(*timeout))
	if err != nil {
		logger.Error("instantiate http client", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, client, logger, cfg); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}

// resolveConfig builds the run configuration from positional args and flag
// values. All positional args join into a single keyword; a missing keyword
// is a usage error, caught before any network client exists.
func resolveConfig(args []string, output string, verbose bool) (*runConfig, error) {
	keyword := strings.TrimSpace(strings.Join(args, " "))
	if keyword == "" {
		return nil, ErrKeywordRequired
	}

	if output == "" {
		output = defaultOutput(keyword)
	}

	return &runConfig{
		keyword:  keyword,
		output:   output,
		endpoint: cve.SearchEndpoint,
		verbose:  verbose,
	}, nil
}

// run executes the fetch, extract, write stages in sequence, aborting on the
// first failure. A cancellation arriving after the fetch still prevents the
// write stage, so an interrupted run leaves no output file.
func run(ctx context.Context, client cve.Doer, logger *slog.Logger, cfg *runConfig) error {
	logger.Info("fetching", "url", cve.SearchURL(cfg.endpoint, cfg.keyword))

	started := time.Now()
	body, err := cve.Search(ctx, client, cfg.endpoint, cfg.keyword)
	if err != nil {
		return fmt.Errorf("fetch search results: %w", err)
	}
	logger.Info("fetched", "bytes", len(body), "elapsed", time.Since(started))

	result, err := cve.Parse(body)
	if err != nil {
		return fmt.Errorf("extract records: %w", err)
	}
	logger.Info("extracted", "total", result.Total, "records", len(result.Records))

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("aborted before write: %w", err)
	}

	if err = csvwriter.Write(cfg.output, result.Records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	logger.Info("wrote", "path", cfg.output, "records", len(result.Records))

	return nil
}

// defaultOutput derives the output filename from the keyword: lowercased,
// runs of non-alphanumerics collapsed to single dashes.
func defaultOutput(keyword string) string {
	lowered := strings.ToLower(keyword)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})

	slug := strings.Join(fields, "-")
	if slug == "" {
		return fallbackOutputFile
	}

	return slug + ".csv"
}
