package config

const (
	defaultOutputDir          = "~/.local/share/shotsync/out"
	defaultLogDir             = "~/.local/share/shotsync/logs"
	defaultDatabasePath       = "~/.local/share/shotsync/shotsync.db"
	defaultCSVName            = "output.csv"
	defaultReportName         = "report.html"
	defaultThumbnailDir       = "thumbs"
	defaultFFmpegBinary       = "ffmpeg"
	defaultFPS                = 24
	defaultProbeTimeout       = 120
	defaultExtractTimeout     = 60
	defaultThumbnailMaxWidth  = 96
	defaultThumbnailMaxHeight = 74
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:    defaultOutputDir,
			LogDir:       defaultLogDir,
			DatabasePath: defaultDatabasePath,
		},
		Output: Output{
			CSVName:      defaultCSVName,
			ReportName:   defaultReportName,
			ThumbnailDir: defaultThumbnailDir,
		},
		Media: Media{
			FFmpegBinary:       defaultFFmpegBinary,
			DefaultFPS:         defaultFPS,
			ProbeTimeout:       defaultProbeTimeout,
			ExtractTimeout:     defaultExtractTimeout,
			ThumbnailMaxWidth:  defaultThumbnailMaxWidth,
			ThumbnailMaxHeight: defaultThumbnailMaxHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
