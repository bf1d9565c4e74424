// Package deps reports the availability of the bundled external tools.
// Status output feeds diagnostics and capability gating; the checks stat
// the bundle directory only and never spawn the tools.
package deps
