// Package backend sources device events from a terminal. A tcell screen
// wrapper owns the terminal lifecycle and a small drawing surface for the
// demo; the translator turns tcell events into device events, and the key
// latch synthesizes the release edges terminals never report.
package backend
