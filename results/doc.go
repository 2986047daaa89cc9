// Package results persists per-trial simulation outcomes.
//
// Two sinks share the Writer interface: a JSON-lines writer for streaming
// one record per line into a file or pipe, and a SQLite store for queryable
// local archives. Both are safe for concurrent writers, matching the
// serialized result callbacks of the sim package.
package results
