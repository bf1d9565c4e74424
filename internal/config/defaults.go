package config

const (
	defaultLogDir          = "~/.local/share/semitone/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultTranscoder      = "ffmpeg"
	defaultProber          = "ffprobe"
	defaultDownloader      = "yt-dlp"
	defaultConvertTimeout  = 1800
	defaultProbeTimeout    = 30
	defaultDownloadTimeout = 3600
	defaultSampleRate      = 44100
	defaultAudioQuality    = "0"
	defaultDownloadDir     = "~/Downloads"
)

func defaultAllowedDomains() []string {
	return []string{"youtube.com", "youtu.be", "music.youtube.com"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Tools: Tools{
			Transcoder:      defaultTranscoder,
			Prober:          defaultProber,
			Downloader:      defaultDownloader,
			ConvertTimeout:  defaultConvertTimeout,
			ProbeTimeout:    defaultProbeTimeout,
			DownloadTimeout: defaultDownloadTimeout,
		},
		Conversion: Conversion{
			SampleRate: defaultSampleRate,
		},
		Download: Download{
			AllowedDomains: defaultAllowedDomains(),
			AudioQuality:   defaultAudioQuality,
			OutputDir:      defaultDownloadDir,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
