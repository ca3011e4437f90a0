// Package dataset loads the raw Oilst marketplace sources into typed
// in-memory tables.
//
// Six sources are recognized: customers (Excel), geolocation, order items,
// payments and orders (CSV), and the state abbreviation mapping (JSON).
// Column access is header-driven, so sources survive column reordering,
// and postal code prefixes are always read as text because their leading
// zeros are significant.
//
// A missing file or a missing required column aborts the run with a typed
// error naming the source; unparseable numeric cells on non-key columns
// are coerced to zero, and the order timestamp columns are passed through
// unparsed for the enrichment stage to handle.
package dataset
