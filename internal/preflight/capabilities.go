package preflight

import (
	"runtime"

	"semitone/internal/bundle"
	"semitone/internal/config"
)

// Capabilities describes the running platform and which bundled tools are
// ready to spawn. The presentation layer uses it to gate affordances, so
// the booleans reflect resolution only and never guarantee a tool runs.
type Capabilities struct {
	Platform            string `json:"platform"`
	Arch                string `json:"arch"`
	BundleDir           string `json:"bundleDir,omitempty"`
	TranscoderAvailable bool   `json:"transcoderAvailable"`
	ProberAvailable     bool   `json:"proberAvailable"`
	DownloaderAvailable bool   `json:"downloaderAvailable"`
}

// Inspect resolves the capability snapshot for the configured tool names.
func Inspect(cfg *config.Config, resolver *bundle.Resolver) Capabilities {
	caps := Capabilities{Platform: runtime.GOOS, Arch: runtime.GOARCH}
	if cfg == nil || resolver == nil {
		return caps
	}
	caps.BundleDir = resolver.Dir()
	caps.TranscoderAvailable = resolver.Available(cfg.Tools.Transcoder)
	caps.ProberAvailable = resolver.Available(cfg.Tools.Prober)
	caps.DownloaderAvailable = resolver.Available(cfg.Tools.Downloader)
	return caps
}
