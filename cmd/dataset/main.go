package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ozicme/config"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - convert: Convert a raw spreadsheet export to the dataset JSON
// - verify:  Check a deployed store API serves a valid dataset
// - search:  Page through the store feed from the terminal

func main() {
	convertCmd := flag.NewFlagSet("convert", flag.ExitOnError)
	verifyCmd := flag.NewFlagSet("verify", flag.ExitOnError)
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)

	// convert parameters
	convertInput := convertCmd.String("input", "", "Input CSV file path")
	convertOutput := convertCmd.String("output", "./data/stores.json", "Output JSON file path")

	// verify parameters
	verifyURL := verifyCmd.String("url", "", "Dataset URL to verify")

	// search parameters
	searchAPI := searchCmd.String("api", "", "Store API base URL (optional)")
	searchData := searchCmd.String("data", "./data/stores.json", "Static dataset path used as fallback")
	searchQuery := searchCmd.String("query", "", "Search query")
	searchLimit := searchCmd.Int("limit", 20, "Page size")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := datasetFlags{
		Convert: convertFlags{
			cmd:    convertCmd,
			input:  convertInput,
			output: convertOutput,
		},
		Verify: verifyFlags{
			cmd: verifyCmd,
			url: verifyURL,
		},
		Search: searchFlags{
			cmd:   searchCmd,
			api:   searchAPI,
			data:  searchData,
			query: searchQuery,
			limit: searchLimit,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type datasetFlags struct {
	Convert convertFlags
	Verify  verifyFlags
	Search  searchFlags
}

type convertFlags struct {
	cmd    *flag.FlagSet
	input  *string
	output *string
}

type verifyFlags struct {
	cmd *flag.FlagSet
	url *string
}

type searchFlags struct {
	cmd   *flag.FlagSet
	api   *string
	data  *string
	query *string
	limit *int
}

func runSubcommand(ctx context.Context, flags *datasetFlags) error {
	switch os.Args[1] {
	case "convert":
		return handleConvert(flags)
	case "verify":
		return handleVerify(ctx, flags)
	case "search":
		return handleSearch(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleConvert(flags *datasetFlags) error {
	if err := flags.Convert.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse convert flags")
	}

	if *flags.Convert.input == "" {
		return errors.New("--input flag is required for convert command")
	}

	return runConvert(*flags.Convert.input, *flags.Convert.output)
}

func handleVerify(ctx context.Context, flags *datasetFlags) error {
	if err := flags.Verify.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse verify flags")
	}

	if *flags.Verify.url == "" {
		return errors.New("--url flag is required for verify command")
	}

	return runVerify(ctx, *flags.Verify.url)
}

func handleSearch(ctx context.Context, flags *datasetFlags) error {
	if err := flags.Search.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse search flags")
	}

	opts := searchOptions{
		apiBaseURL: *flags.Search.api,
		dataPath:   *flags.Search.data,
		query:      *flags.Search.query,
		limit:      *flags.Search.limit,
	}

	// The service config fills in what the flags leave unset.
	if cfg, err := config.New(); err == nil && cfg.Feed != nil {
		if opts.apiBaseURL == "" {
			opts.apiBaseURL = cfg.Feed.APIBaseURL
		}
		opts.fetchTimeout = cfg.Feed.FetchTimeout
		if opts.limit <= 0 {
			opts.limit = cfg.Feed.PageSize
		}
	}

	return runSearch(ctx, opts)
}

func printUsage() {
	fmt.Println("Usage: dataset <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  convert     Convert a raw spreadsheet export to the dataset JSON")
	fmt.Println("  verify      Check a deployed store API serves a valid dataset")
	fmt.Println("  search      Page through the store feed from the terminal")
	fmt.Println("")
	fmt.Println("Use 'dataset <command> -h' for more information about a command.")
}
