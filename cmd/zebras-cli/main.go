package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/paveg/zebras"
	"github.com/paveg/zebras/internal/config"
	"github.com/paveg/zebras/internal/monitoring"
	"github.com/paveg/zebras/internal/validation"
	"github.com/paveg/zebras/internal/version"
)

const defaultHeadRows = 10

var errNoInput = errors.New("-csv is required")

type options struct {
	csvPath     string
	configPath  string
	group       string
	column      string
	describe    bool
	head        int
	jsonOut     string
	parquetOut  string
	showVersion bool
}

func usage(fs *flag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "Zebras data wrangling CLI (version %s)\n\n", version.Version)
		fmt.Fprintf(w, "Usage: zebras-cli -csv FILE [options]\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("zebras-cli", flag.ContinueOnError)
	fs.StringVar(&opts.csvPath, "csv", "", "CSV file to read")
	fs.StringVar(&opts.configPath, "config", "", "Config file (.json, .yaml or .yml); ZEBRAS_* env vars override it")
	fs.StringVar(&opts.group, "group", "", "Column to group by")
	fs.StringVar(&opts.column, "col", "", "Column to parse as numbers and summarize")
	fs.BoolVar(&opts.describe, "describe", false, "Print min/max/count/sum/mean/std of -col per -group")
	fs.IntVar(&opts.head, "head", defaultHeadRows, "Number of rows to print")
	fs.StringVar(&opts.jsonOut, "json", "", "Write the result as JSON to this file")
	fs.StringVar(&opts.parquetOut, "parquet", "", "Write the result as Parquet to this file")
	fs.BoolVar(&opts.showVersion, "v", false, "Print version and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit") // alias
	fs.Usage = usage(fs, stderr)
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.describe && (opts.group == "" || opts.column == "") {
		return opts, errors.New("-describe needs both -group and -col")
	}
	return opts, nil
}

func loadConfig(path string) (config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return cfg, err
		}
	}
	cfg = cfg.WithEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprint(stdout, version.Info().String())
		return 0
	}
	if opts.csvPath == "" {
		fmt.Fprintf(stderr, "error: %v (see -h)\n", errNoInput)
		return 2
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	config.SetGlobalConfig(cfg)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	logger.Debug("starting", "version", version.Version, "release", version.IsRelease())

	metrics := monitoring.NewMetricsCollector(cfg.MetricsCollection)
	out, err := process(opts, metrics)
	if cfg.MetricsCollection {
		metrics.LogSummary(logger)
	}
	if err != nil {
		logger.Error("processing failed", "csv", opts.csvPath, "error", err)
		return 1
	}

	fmt.Fprint(stdout, out)
	return 0
}

func process(opts options, metrics *monitoring.MetricsCollector) (string, error) {
	var ds zebras.Dataset
	err := metrics.RecordOperation("read_csv", func() (int, error) {
		var err error
		ds, err = zebras.ReadCSV(opts.csvPath)
		return len(ds), err
	})
	if err != nil {
		return "", err
	}

	if opts.describe {
		if err := validation.NewCompoundValidator(
			validation.NewEmptyDatasetValidator(ds, "describe"),
			validation.NewColumnValidator(ds, "describe", opts.group, opts.column),
		).Validate(); err != nil {
			return "", err
		}
	}
	if opts.column != "" {
		if err := validation.ValidateColumns(ds, "ParseNums", opts.column); err != nil {
			return "", err
		}
		ds = zebras.ParseNums([]string{opts.column}, ds)
	}

	result := ds
	if opts.describe {
		err = metrics.RecordOperation("describe", func() (int, error) {
			var err error
			result, err = zebras.GbDescribe(opts.column, zebras.GroupByCol(opts.group, ds))
			return len(ds), err
		})
		if err != nil {
			return "", err
		}
	}

	if opts.jsonOut != "" {
		if err := metrics.RecordOperation("write_json", func() (int, error) {
			return len(result), zebras.ToJSON(opts.jsonOut, result)
		}); err != nil {
			return "", err
		}
	}
	if opts.parquetOut != "" {
		if err := metrics.RecordOperation("write_parquet", func() (int, error) {
			return len(result), zebras.ToParquet(opts.parquetOut, result)
		}); err != nil {
			return "", err
		}
	}

	if opts.describe {
		return zebras.Print(result), nil
	}
	return zebras.PrintHead(opts.head, result), nil
}
