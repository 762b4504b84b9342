package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

const (
	feedbackRequestLimit = 30
	feedbackWindow       = time.Minute
)

// withFeedbackRateLimit caps feedback pings per client IP, since every
// accepted ping may end up in the log.
func withFeedbackRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		feedbackRequestLimit,
		feedbackWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(feedbackWindow.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
		}),
	)
}
