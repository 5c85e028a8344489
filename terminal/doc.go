// Package terminal runs the simulation in a tcell screen.
//
// Features:
//   - World scaled to whatever grid the terminal offers, re-read on resize
//   - Mouse clicks mapped back to world coordinates for the retry control
//   - Input polled on a dedicated goroutine, simulation and drawing on the caller's goroutine
//   - Clean terminal restoration on exit/panic
package terminal
