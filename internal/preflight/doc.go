// Package preflight verifies the runtime environment before operations
// run: directory access for the configured paths and availability of the
// bundled tools. It also produces the capability snapshot the presentation
// layer uses to gate conversion and download affordances.
package preflight
