// Package params implements the command-line codec shared by every dumping
// engine.
//
// A Grammar declares the commands an engine accepts, the flags it knows,
// which flags are legal for which command, and the positional arguments each
// command takes. A Set holds one invocation: the active command plus a
// tri-state and value for every flag. Generate and Parse convert between a
// Set and the exact command line the external binary expects, and the pair
// round-trips: Generate(Parse(s)) == s for every canonical command line s.
package params
