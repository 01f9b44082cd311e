package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rotafacil",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rotafacil",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	voiceState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rotafacil",
			Subsystem: "voice",
			Name:      "state",
			Help:      "Voice bridge state (0=disconnected, 1=connecting, 2=connected).",
		},
	)
	voiceFrames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rotafacil",
			Subsystem: "voice",
			Name:      "frames_sent_total",
			Help:      "Captured audio frames forwarded to the speech service.",
		},
		[]string{"success"},
	)
	voiceToolCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rotafacil",
			Subsystem: "voice",
			Name:      "tool_calls_total",
			Help:      "Remote function calls handled by the voice bridge.",
		},
		[]string{"name", "success"},
	)
	voicePlayback = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rotafacil",
			Subsystem: "voice",
			Name:      "playback_events_total",
			Help:      "Audio output segments scheduled and interruptions received.",
		},
		[]string{"event"},
	)
	storeLoadFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rotafacil",
			Subsystem: "store",
			Name:      "load_failures_total",
			Help:      "Persisted collections that failed to load and were reset to empty.",
		},
		[]string{"collection"},
	)
	rosterPosts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rotafacil",
			Subsystem: "roster",
			Name:      "posts_total",
			Help:      "Daily roster notifications sent to Slack.",
		},
		[]string{"success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration,
			voiceState, voiceFrames, voiceToolCalls, voicePlayback,
			storeLoadFailures, rosterPosts,
		)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordVoiceState(state int) {
	RegisterMetrics()
	voiceState.Set(float64(state))
}

func RecordVoiceFrame(success bool) {
	RegisterMetrics()
	voiceFrames.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func RecordToolCall(name string, success bool) {
	RegisterMetrics()
	voiceToolCalls.WithLabelValues(name, strconv.FormatBool(success)).Inc()
}

func RecordPlayback(event string) {
	RegisterMetrics()
	voicePlayback.WithLabelValues(event).Inc()
}

func RecordLoadFailure(collection string) {
	RegisterMetrics()
	storeLoadFailures.WithLabelValues(collection).Inc()
}

func RecordRosterPost(success bool) {
	RegisterMetrics()
	rosterPosts.WithLabelValues(strconv.FormatBool(success)).Inc()
}
