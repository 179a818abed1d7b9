// Command spatialq parses SQL queries with spatial KNN join support
// and prints the resulting logical plan.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spatialq/spatialq/output"
	"github.com/spatialq/spatialq/plan"
	"github.com/spatialq/spatialq/reader"
	"github.com/spatialq/spatialq/sql"
)

var (
	queryFlag   = flag.String("q", "", "SQL query (e.g., \"select * from a.parquet knn join b.parquet using POINT(x2, y2) knnPred (POINT(x1, y1), 5)\")")
	formatFlag  = flag.String("f", "text", "Output format: text, json")
	schemaFlag  = flag.String("schema", "", "Show schema of the given parquet file instead of planning a query")
	noCatalog   = flag.Bool("no-catalog", false, "Skip schema resolution against parquet files on disk")
	verboseFlag = flag.Bool("v", false, "Enable verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to parse spatial SQL queries and print their logical plans.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -q \"select * from a.parquet inner join b.parquet on a.id = b.id\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"select * from t1.parquet knn join t2.parquet using POINT(x2, y2) knnPred (POINT(x1, y1), 5)\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f json -q \"select * from data.parquet where age > 30\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -schema data.parquet\n", os.Args[0])
	}

	flag.Parse()

	logLevel := slog.LevelWarn
	if *verboseFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Validate flag combinations
	if *schemaFlag != "" && *queryFlag != "" {
		fmt.Fprintf(os.Stderr, "Error: -schema and -q cannot be used together\n")
		os.Exit(1)
	}

	// Handle schema mode
	if *schemaFlag != "" {
		if err := printSchema(*schemaFlag, *formatFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *queryFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: missing query\n\n")
		flag.Usage()
		os.Exit(1)
	}

	start := time.Now()
	query, err := sql.Parse(*queryFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing query: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("query parsed", "duration", time.Since(start))

	var catalog plan.Catalog
	if !*noCatalog {
		catalog = reader.NewCatalog()
	}

	start = time.Now()
	logicalPlan, err := plan.NewBuilder(catalog).Build(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building plan: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("plan built", "duration", time.Since(start))

	var formatter output.PlanFormatter
	switch *formatFlag {
	case "text":
		formatter = output.NewTextFormatter(os.Stdout)
	case "json":
		formatter = output.NewJSONFormatter(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(os.Stderr, "Supported formats: text, json\n")
		os.Exit(1)
	}

	if err := formatter.Format(logicalPlan); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting plan: %v\n", err)
		os.Exit(1)
	}
}

// printSchema prints the schema of a parquet file in the requested
// format (table for text, json otherwise).
func printSchema(path, format string) error {
	infos, err := reader.ExtractSchemaInfo(path)
	if err != nil {
		return err
	}

	switch format {
	case "text", "table":
		return output.NewSchemaTableFormatter(os.Stdout).Format(infos)
	case "json":
		return output.NewSchemaJSONFormatter(os.Stdout).Format(infos)
	default:
		return fmt.Errorf("unsupported format %q for schema output", format)
	}
}
