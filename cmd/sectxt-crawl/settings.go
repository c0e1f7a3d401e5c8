package main

// settings holds the command-line options for the crawler, parsed with
// go-flags the same way the chisel CLI in the retrieved example pack
// defines its subcommand options.
type settings struct {
	Threads     int  `long:"threads" description:"number of domains probed concurrently" default:"30"`
	TimeoutSecs int  `long:"timeout" description:"per-request timeout, in seconds" default:"3"`
	Relaxed     bool `long:"relaxed" description:"accept bare LF line endings inside the PGP frame instead of requiring CRLF"`
	Quiet       bool `long:"quiet" description:"suppress log records for domains that fail"`
	PrintStats  bool `long:"print-stats" description:"print \"<ok>/<total>\" to stdout when done"`
}
