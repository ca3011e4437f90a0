// Package dataprocessing implements the consolidation pipeline stages that
// sit between loading and export: geolocation and state deduplication,
// order enrichment (timestamp parsing, calendar fields, delay
// classification), per-order item aggregation, and the four left joins
// that produce the final consolidated table.
//
// Every stage is a pure function over its input tables; nothing is mutated
// across stage boundaries and rerunning a stage on the same input yields
// the same output.
package dataprocessing
