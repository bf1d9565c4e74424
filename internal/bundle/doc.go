// Package bundle resolves the external tool executables shipped alongside
// the semitone binary. Resolution is limited to a single bundle directory on
// purpose; there is no $PATH fallback, keeping installs reproducible.
package bundle
