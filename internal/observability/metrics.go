// Package observability holds Prometheus metrics for the application.
package observability

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts counts login attempts by result ("success" or "failure").
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "huddle_login_attempts_total",
		Help: "Total number of login attempts by result",
	}, []string{"result"})

	// MessagesSent counts messages posted to groups.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "huddle_messages_sent_total",
		Help: "Total number of messages sent to groups",
	})

	// LikesRecorded counts likes recorded on messages.
	LikesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "huddle_message_likes_total",
		Help: "Total number of likes recorded on messages",
	})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "huddle_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// InitMetrics creates the Fiber Prometheus middleware for HTTP request metrics.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}
