// Package gtthread implements a user-space cooperative/preemptive
// green-thread scheduler: a single logical run queue, FIFO ordering,
// join-with-mutual-deadlock-detection, lazy cancellation, and a strictly
// fair FIFO mutex.
//
// Logical threads are realized as goroutines whose turn to run is granted
// and revoked by the scheduler rather than left to the Go runtime; see
// SPEC_FULL.md §0 for the full mapping from the original ucontext/SIGVTALRM
// design this package is modeled on. Call Init once before using any other
// package-level function, or construct a *Scheduler directly with New to
// run more than one scheduler in a process (most callers want Init).
package gtthread
