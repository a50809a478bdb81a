package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - generate:   Generate one day's orders, items and inventory movements
// - upload:     Upload one day's partitions plus reference data to the bucket
// - load:       Load one day's partitions and the reference data into the warehouse
// - transform:  Run the transformation models and their test suite
// - seed-dates: Write the date dimension seed file
// - run:        generate + upload + load + transform in one step

func main() {
	// Subcommand definitions
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	uploadCmd := flag.NewFlagSet("upload", flag.ExitOnError)
	loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
	transformCmd := flag.NewFlagSet("transform", flag.ExitOnError)
	seedDatesCmd := flag.NewFlagSet("seed-dates", flag.ExitOnError)
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)

	// generate parameters
	generateDate := generateCmd.String("date", "", "Batch date as YYYY-MM-DD (default: yesterday)")

	// upload parameters
	uploadDate := uploadCmd.String("date", "", "Batch date as YYYY-MM-DD (default: yesterday)")

	// load parameters
	loadDate := loadCmd.String("date", "", "Batch date as YYYY-MM-DD (default: yesterday)")
	loadReference := loadCmd.Bool("reference", true, "Also replace the reference tables")

	// transform parameters
	transformTest := transformCmd.Bool("test", true, "Run the test suite after the models")

	// seed-dates parameters
	seedStart := seedDatesCmd.String("start", "2020-01-01", "First date of the dimension as YYYY-MM-DD")
	seedEnd := seedDatesCmd.String("end", "2030-12-31", "Last date of the dimension as YYYY-MM-DD")

	// run parameters
	runDate := runCmd.String("date", "", "Batch date as YYYY-MM-DD (default: yesterday)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := pipelineFlags{
		Generate: dateFlags{
			cmd:  generateCmd,
			date: generateDate,
		},
		Upload: dateFlags{
			cmd:  uploadCmd,
			date: uploadDate,
		},
		Load: loadFlags{
			cmd:       loadCmd,
			date:      loadDate,
			reference: loadReference,
		},
		Transform: transformFlags{
			cmd:  transformCmd,
			test: transformTest,
		},
		SeedDates: seedDatesFlags{
			cmd:   seedDatesCmd,
			start: seedStart,
			end:   seedEnd,
		},
		Run: dateFlags{
			cmd:  runCmd,
			date: runDate,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type pipelineFlags struct {
	Generate  dateFlags
	Upload    dateFlags
	Load      loadFlags
	Transform transformFlags
	SeedDates seedDatesFlags
	Run       dateFlags
}

type dateFlags struct {
	cmd  *flag.FlagSet
	date *string
}

type loadFlags struct {
	cmd       *flag.FlagSet
	date      *string
	reference *bool
}

type transformFlags struct {
	cmd  *flag.FlagSet
	test *bool
}

type seedDatesFlags struct {
	cmd   *flag.FlagSet
	start *string
	end   *string
}

func runSubcommand(ctx context.Context, flags *pipelineFlags) error {
	switch os.Args[1] {
	case "generate":
		return handleGenerate(ctx, flags)
	case "upload":
		return handleUpload(ctx, flags)
	case "load":
		return handleLoad(ctx, flags)
	case "transform":
		return handleTransform(ctx, flags)
	case "seed-dates":
		return handleSeedDates(ctx, flags)
	case "run":
		return handleRun(ctx, flags)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Println("Usage: pipeline <subcommand> [options]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  generate    Generate one day's orders, items and inventory movements")
	fmt.Println("  upload      Upload one day's partitions plus reference data to the bucket")
	fmt.Println("  load        Load one day's partitions and the reference data into the warehouse")
	fmt.Println("  transform   Run the transformation models and their test suite")
	fmt.Println("  seed-dates  Write the date dimension seed file")
	fmt.Println("  run         generate + upload + load + transform in one step")
	fmt.Println()
	fmt.Println("Run 'pipeline <subcommand> -h' for subcommand options.")
}
