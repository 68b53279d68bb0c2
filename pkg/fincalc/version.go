// Package fincalc exposes build-level metadata for the fincalc tool.
package fincalc

// Version is the current release version.
const Version = "0.1.0"
