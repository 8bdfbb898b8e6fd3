package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vegasq/tabcat/internal/config"
	"github.com/vegasq/tabcat/internal/engine"
	"github.com/vegasq/tabcat/internal/logging"
	"github.com/vegasq/tabcat/internal/output"
	"github.com/vegasq/tabcat/internal/query"
	"github.com/vegasq/tabcat/internal/reader"
)

// ErrArgs is returned when the command line does not hold exactly one query
var ErrArgs = errors.New("argument error")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch {
	case errors.Is(err, query.ErrSyntax):
		fmt.Fprintf(os.Stderr, "\nQuery format: select <columns|*> from <file> [where <col> <op> <value> [and ...]] [order by <col> [asc|desc]] [limit <n>]\n")
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
	}
	os.Exit(1)
}

// run executes one invocation and writes the result to stdout
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("tabcat", flag.ContinueOnError)
	flags.SetOutput(stderr)

	formatFlag := flags.String("f", "", "Output format: tsv, table, csv, json (default tsv)")
	configFlag := flags.String("config", "", "Path to a YAML config file (default "+config.DefaultPath+" if present)")
	schemaFlag := flags.Bool("schema", false, "Show the column names of the FROM file instead of data")
	verboseFlag := flags.Bool("v", false, "Verbose logging to stderr")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tabcat [options] \"<query>\"\n\n")
		fmt.Fprintf(stderr, "Query comma-delimited text and Parquet files with a small SQL dialect.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  tabcat \"select * from ./sample.csv\"\n")
		fmt.Fprintf(stderr, "  tabcat \"select id, name from ./sample.csv where team_id = 1 order by id desc limit 2\"\n")
		fmt.Fprintf(stderr, "  tabcat -f table \"select * from data/*.parquet where age >= 30\"\n")
		fmt.Fprintf(stderr, "  tabcat -schema \"select * from ./sample.csv\"\n")
	}

	if err := flags.Parse(args); err != nil {
		return err
	}

	input, err := queryArg(flags.Args())
	if err != nil {
		flags.Usage()
		return err
	}

	configPath, required := *configFlag, *configFlag != ""
	if !required {
		configPath = config.DefaultPath
	}
	cfg, err := config.Load(configPath, required)
	if err != nil {
		return err
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if *verboseFlag {
		cfg.LogLevel = "debug"
	}

	formatter, err := output.New(cfg.Format, stdout)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	q, err := query.Parse(input)
	if err != nil {
		return err
	}
	sugar.Debugw("query parsed", "tokens", query.Texts(q.Tokens()))

	executor := engine.NewExecutor(reader.NewDispatcher(cfg.MaxFiles), sugar)

	var result *engine.Result
	if *schemaFlag {
		result, err = executor.Schema(q)
	} else {
		result, err = executor.Execute(q)
	}
	if err != nil {
		return err
	}

	if err := formatter.Format(result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

// queryArg returns the single positional query argument
func queryArg(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: not enough args", ErrArgs)
	}
	if len(args) > 1 {
		return "", fmt.Errorf("%w: too many args", ErrArgs)
	}
	return args[0], nil
}
