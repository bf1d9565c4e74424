// Package services defines shared utilities consumed by the orchestrators
// and external tool integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that keep failure
//     classification uniform across conversion, probing, and download.
//   - Context helpers that stamp operation identifiers and kinds for logging
//     and journal correlation.
//
// Use these helpers when wiring new orchestration logic so operational
// behaviour (error handling, observability) stays uniform across tools.
package services
