// Package media holds the shared data model for audio assets moving
// through the engine: file descriptions, conversion options, and the
// supported-format registry. The types here are plain values with no
// behavior beyond construction so that orchestrators and the CLI can
// exchange them without pulling in process or tool dependencies.
package media
