// Package analytics computes summary reports over the consolidated dataset.
//
// The package reads the processed table back from disk, restricts it to
// delivered orders where a computation requires completed deliveries, and
// produces the report tables consumed by the summarize command:
//
//   - value counts of order and delay statuses, absolute and normalized
//   - descriptive statistics of delivery delta days per delay status
//   - total sales and sales share per delay status
//   - monthly sales pivoted by delay status
//   - order counts cross tabulated by product count and delay status
//   - a Pearson correlation matrix over the numeric columns
//
// All statistics treat missing values as absent: rows without the required
// fields are skipped, never counted as zero.
package analytics
