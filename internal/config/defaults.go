package config

const (
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultPreviewRows = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Fingerprint: Fingerprint{
			Workers: 0,
		},
		Preview: Preview{
			Rows: defaultPreviewRows,
		},
	}
}
