// Package logging is a process-global, installable diagnostic sink: a
// level filter plus a single hook, invoked synchronously from whichever
// goroutine emits the record. There is no buffering, no background
// flusher and no structured handler chain — the rest of the module logs
// through here instead of reaching for log/slog directly, so a caller on
// the far side of a foreign-ABI boundary has exactly one place to adapt
// output into its own logging framework.
package logging
