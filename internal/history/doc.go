// Package history records the outcome of each verification, extraction, and
// archive run in a SQLite database under the state directory.
//
// Rows are append-only; Prune and Clear are the only deletions. The schema is
// versioned and a mismatch is reported as ErrSchemaMismatch instead of being
// migrated in place.
package history
