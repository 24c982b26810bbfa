// Package manifest checks, archives, and cleans up the files an external
// dumping run leaves behind.
//
// Each engine declares a table of Entry values relative to the base path of
// a dump. CheckAllPresent decides whether a run finished, Archive moves the
// archivable logs into "<base>_logs.zip", Delete removes bulky intermediate
// files, and Artifacts returns the base64 payloads a submission record
// embeds. A bundle produced by Archive counts as a valid location for every
// file it contains, so re-verifying an already archived dump succeeds.
package manifest
