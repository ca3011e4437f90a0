// Package exporter provides CSV export functionality for the Oilst consolidation pipeline.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with atomic writes (temp file plus
// rename), directory creation, streaming support, and an optional UTF-8 BOM
// for Excel compatibility.
//
// ConsolidatedExporter: Renders consolidated order records into the processed
// dataset table with a fixed column order. Missing values export as empty
// fields rather than zeros.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths)
//	consolidated := exporter.NewConsolidatedExporter(writer)
//
//	// Export the processed dataset
//	err := consolidated.Export(ctx, records, "oilst_processed.csv")
package exporter
