package config

const (
	defaultOutputDir    = "~/iconsets"
	defaultStagingDir   = "~/.local/share/iconkit/staging"
	defaultLogDir       = "~/.local/share/iconkit/logs"
	defaultPrefix       = "fa"
	defaultDisplayName  = "Font Awesome"
	defaultVersion      = "0.0.0"
	defaultAuthorName   = "Font Awesome"
	defaultLicenseTitle = "CC BY 4.0"
	defaultLicenseSPDX  = "CC-BY-4.0"
	defaultDimension    = 512
	defaultJobs         = 4
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
		},
		IconSet: IconSet{
			Prefix:           defaultPrefix,
			DisplayName:      defaultDisplayName,
			Version:          defaultVersion,
			AuthorName:       defaultAuthorName,
			LicenseTitle:     defaultLicenseTitle,
			LicenseSPDX:      defaultLicenseSPDX,
			DefaultDimension: defaultDimension,
		},
		Convert: Convert{
			Jobs: defaultJobs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
