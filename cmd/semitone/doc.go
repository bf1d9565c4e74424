// Package main hosts the semitone CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into engine
// operations: pitch-shifted conversion, metadata probing, audio downloads,
// environment status reporting, journal inspection, and configuration
// scaffolding. It centralizes configuration resolution, logger setup, and
// journal access so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
