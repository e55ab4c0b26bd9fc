package store

import (
	"errors"
	"fmt"

	"github.com/IlyaRucavitcyn/ai-indicator/internal/parquet"
)

// ExecuteStoreExport performs the actual export of run data to Parquet files.
func ExecuteStoreExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	runs := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := runs.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total indicator records: %d\n", status.TableSizes[indicatorsTable])

	// Retrieve all analysis runs
	runRecords, err := runs.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all indicator records
	indicatorRecords, err := runs.GetAllIndicators()
	if err != nil {
		return fmt.Errorf("failed to retrieve indicators: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runRecords)
	parquetIndicators := parquet.ConvertIndicatorRecords(indicatorRecords)

	// Write analysis runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write indicator records to Parquet
	indicatorsFile := outputFile + ".indicators.parquet"
	if err := parquet.WriteIndicatorsParquet(parquetIndicators, indicatorsFile); err != nil {
		return fmt.Errorf("failed to write indicators: %w", err)
	}
	fmt.Printf("Exported %d indicator records to: %s\n", len(parquetIndicators), indicatorsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
