// Package config holds process-wide switches that normalize
// nondeterministic output for golden tests, kept separate from the
// algorithmic packages that read them.
package config

// Version is the current module version.
var Version = "0.1.0"

// IsTestMode indicates whether fresh type-variable names should be
// normalized (e.g. "$14" -> "$?") so golden fixtures stay stable across
// unrelated changes to allocation order. Set once at process start by
// whichever test harness or tool drives the analyzer.
var IsTestMode = false
