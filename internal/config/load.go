package config

// Load validates partial and returns the fully defaulted, immutable [Config].
//
// Omitted optional fields take their documented defaults (blockDailyCheck
// false, logPath disabled, logToStdout true, logLevel info, logFeedback
// false, verbose false, httpAddress localhost, httpPort 3000). Required
// fields are the two origins, adminEmail and the eight storage paths.
//
// Load is pure: it never touches the filesystem. Checking that the
// directories exist and are writable is the job of the store package.
//
// On failure the returned error joins one [*FieldError] per rejected field;
// use errors.Is with [ErrMissingField], [ErrInvalidFormat] or
// [ErrPathCollision] to classify it.
func Load(partial PartialConfig) (*Config, error) {
	v := &validator{}

	cfg := &Config{
		origins: Origins{
			Unsafe: v.origin(fieldHTTPUnsafeOrigin, partial.HTTPUnsafeOrigin),
			Safe:   v.origin(fieldHTTPSafeOrigin, partial.HTTPSafeOrigin),
		},
		adminEmail:      v.email(fieldAdminEmail, partial.AdminEmail),
		blockDailyCheck: boolOr(partial.BlockDailyCheck, defaultBlockDailyCheck),
		storage: StoragePaths{
			File:        v.dir(fieldFilePath, partial.FilePath),
			Archive:     v.dir(fieldArchivePath, partial.ArchivePath),
			Pin:         v.dir(fieldPinPath, partial.PinPath),
			Task:        v.dir(fieldTaskPath, partial.TaskPath),
			Block:       v.dir(fieldBlockPath, partial.BlockPath),
			Blob:        v.dir(fieldBlobPath, partial.BlobPath),
			BlobStaging: v.dir(fieldBlobStagingPath, partial.BlobStagingPath),
			Decree:      v.dir(fieldDecreePath, partial.DecreePath),
		},
		logging: Logging{
			Path:     v.logPath(partial.LogPath),
			ToStdout: boolOr(partial.LogToStdout, defaultLogToStdout),
			Level:    v.logLevel(partial.LogLevel),
			Feedback: boolOr(partial.LogFeedback, defaultLogFeedback),
			Verbose:  boolOr(partial.Verbose, defaultVerbose),
		},
		http: HTTP{
			Address: v.httpAddress(partial.HTTPAddress),
			Port:    v.httpPort(partial.HTTPPort),
		},
	}

	v.distinctOrigins(cfg.origins.Unsafe, cfg.origins.Safe)
	v.distinctPaths(cfg.Directories())

	if err := v.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
