// Package main hosts the dumpdriver CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into engine
// command lines, parses existing command lines back into structured form,
// verifies and archives the files an engine run produced, scrapes engine
// logs into a metadata record, and keeps a local dump history. Configuration
// resolution, session IDs, and structured logging are wired once in the root
// command so subcommands stay declarative.
package main
