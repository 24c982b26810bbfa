// Package services defines the error markers and context helpers shared by
// the CLI commands and the packages they drive.
//
// Key responsibilities:
//   - Context helpers that stamp session IDs, engine names, stages, and dump
//     base paths for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent history statuses (failed vs review).
package services
