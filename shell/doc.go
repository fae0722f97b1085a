// Package shell implements an interactive line-editing and command-dispatch
// engine for byte-oriented terminals on resource-constrained hosts.
//
// Features:
//   - Character-at-a-time polling that never blocks the host loop
//   - VT100 escape sequence parsing for history recall (arrow keys)
//   - Fixed-capacity history ring with in-progress-edit preservation
//   - Quoted/escaped argument tokenization over a mutable line buffer
//   - Minimal formatted output (integer/hex/char/string verbs)
//
// All buffers are sized at construction; the engine performs no allocation
// after New. A Shell instance is strictly single-threaded: the host drives
// it from one loop (or scheduler tick) and supplies the byte transport.
package shell
