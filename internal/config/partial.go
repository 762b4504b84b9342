package config

// Field names as they appear in config files and error messages.
const (
	fieldHTTPUnsafeOrigin = "httpUnsafeOrigin"
	fieldHTTPSafeOrigin   = "httpSafeOrigin"
	fieldAdminEmail       = "adminEmail"
	fieldFilePath         = "filePath"
	fieldArchivePath      = "archivePath"
	fieldPinPath          = "pinPath"
	fieldTaskPath         = "taskPath"
	fieldBlockPath        = "blockPath"
	fieldBlobPath         = "blobPath"
	fieldBlobStagingPath  = "blobStagingPath"
	fieldDecreePath       = "decreePath"
	fieldLogPath          = "logPath"
	fieldLogLevel         = "logLevel"
	fieldHTTPAddress      = "httpAddress"
	fieldHTTPPort         = "httpPort"
)

// LogPathDisabled is the marker value that turns file logging off when
// given for logPath through the environment or a flag. Files use the
// boolean false instead; a string in a file always names a directory.
const LogPathDisabled = "false"

// PartialConfig is the raw configuration input. A nil field means the
// source did not set it; [Load] fills optional fields with their defaults
// and rejects missing required ones.
//
// Struct tags:
//   - env: variable name, read with the CRYPTPAD_ prefix (caarlos0/env).
type PartialConfig struct {
	HTTPUnsafeOrigin *string `env:"HTTP_UNSAFE_ORIGIN"`
	HTTPSafeOrigin   *string `env:"HTTP_SAFE_ORIGIN"`
	AdminEmail       *string `env:"ADMIN_EMAIL"`
	BlockDailyCheck  *bool   `env:"BLOCK_DAILY_CHECK"`

	FilePath        *string `env:"FILE_PATH"`
	ArchivePath     *string `env:"ARCHIVE_PATH"`
	PinPath         *string `env:"PIN_PATH"`
	TaskPath        *string `env:"TASK_PATH"`
	BlockPath       *string `env:"BLOCK_PATH"`
	BlobPath        *string `env:"BLOB_PATH"`
	BlobStagingPath *string `env:"BLOB_STAGING_PATH"`
	DecreePath      *string `env:"DECREE_PATH"`

	// LogPath is a directory, or empty / [LogPathDisabled] for no file logging.
	LogPath     *string `env:"LOG_PATH"`
	LogToStdout *bool   `env:"LOG_TO_STDOUT"`
	LogLevel    *string `env:"LOG_LEVEL"`
	LogFeedback *bool   `env:"LOG_FEEDBACK"`
	Verbose     *bool   `env:"VERBOSE"`

	HTTPAddress *string `env:"HTTP_ADDRESS"`
	HTTPPort    *int    `env:"HTTP_PORT"`
}

// sourceConfig is what a single source produces: the partial record plus
// the optional path of a config file to read next.
type sourceConfig struct {
	Partial PartialConfig

	// FilePath is populated via the CRYPTPAD_CONFIG variable or the
	// -c / -config flag.
	FilePath string `env:"CONFIG"`
}
