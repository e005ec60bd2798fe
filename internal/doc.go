// Package gridview implements an interactive console viewer for Fingrid
// Open Data electricity time series.
//
// # Architecture
//
// The application is structured into several key packages:
//   - api: Fingrid HTTP client with rate limiting and response caching
//   - apperrors: error-kind taxonomy and user-facing messages
//   - config: YAML + environment configuration loading
//   - console: menu loop, prompts and result display
//   - sample: synthetic data for demo mode
//   - series: tabular model, statistics and table rendering
//
// Data flows one way: raw JSON records from api (or sample) are converted
// into a series.Table, statistics are computed from the table, and both
// are rendered by console. Each query produces a fresh table and summary;
// nothing is persisted.
package gridview
