// Package apt bootstraps system packages through apt-get.
//
// Both operations run privileged and stream their output to the run
// transcript. apt's own semantics make them idempotent across runs.
package apt
