package config

const (
	defaultBlockDailyCheck = false
	defaultLogToStdout     = true
	defaultLogLevel        = LogLevelInfo
	defaultLogFeedback     = false
	defaultVerbose         = false
	defaultHTTPAddress     = "localhost"
	defaultHTTPPort        = 3000
)

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
