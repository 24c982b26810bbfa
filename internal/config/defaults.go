package config

const (
	defaultConfigPath     = "~/.config/dumpdriver/config.toml"
	projectConfigName     = "dumpdriver.toml"
	historyFileName       = "history.db"
	defaultOutputDir      = "~/dumps"
	defaultLogDir         = "~/.local/share/dumpdriver/logs"
	defaultStateDir       = "~/.local/share/dumpdriver"
	defaultEngine         = "redumper"
	defaultDIC            = "DiscImageCreator"
	defaultRedumper       = "redumper"
	defaultRereadCount    = 20
	defaultDVDRereadCount = 10
	defaultMultiSector    = 8
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultLogRetention   = 30
	defaultHistoryDays    = 365
)

// DriveEnv names the environment variable consulted when no drive is
// configured.
const DriveEnv = "DUMPDRIVER_DRIVE"

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			StateDir:  defaultStateDir,
		},
		Dump: Dump{
			Engine:      defaultEngine,
			Precheck:    true,
			HashImages:  true,
			ArchiveLogs: true,
		},
		DIC: DIC{
			Binary:               defaultDIC,
			RereadCount:          defaultRereadCount,
			DVDRereadCount:       defaultDVDRereadCount,
			Quiet:                true,
			MultiSectorReadValue: defaultMultiSector,
		},
		Redumper: Redumper{
			Binary:      defaultRedumper,
			RereadCount: defaultRereadCount,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetention,
		},
		History: History{
			Enabled:       true,
			RetentionDays: defaultHistoryDays,
		},
	}
}
