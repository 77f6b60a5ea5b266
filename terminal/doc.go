// Package terminal provides direct ANSI terminal control with zero-alloc encoding.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Op-stream application: cursor moves, style sets, text writes
//   - SIGWINCH resize detection
//   - Clean terminal restoration on exit/panic
//   - Optional tcell-backed implementation for hosts already running tcell
//
// The ANSI implementation bypasses terminfo/termcap entirely, emitting direct
// ANSI sequences. Target environments: Linux, macOS, BSDs with
// xterm-compatible terminals.
package terminal
