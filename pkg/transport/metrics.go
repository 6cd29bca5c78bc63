package transport

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
)

// MetricsConfig configures transport metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wtwire").
	Namespace string

	// Subsystem is the metrics subsystem (default: "transport").
	Subsystem string

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels

	// Registry receives the collectors (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
}

// MetricsOption configures transport metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the registry the collectors are registered with.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wtwire",
		Subsystem: "transport",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts messages and bytes moving through connections. One
// instance is shared by every connection of a process. A nil *Metrics
// records nothing.
type Metrics struct {
	messagesSent     *prometheus.CounterVec
	messagesReceived *prometheus.CounterVec
	decodeErrors     *prometheus.CounterVec
	bytesSent        prometheus.Counter
	bytesReceived    prometheus.Counter
}

// NewMetrics creates and registers the transport collectors. Registering
// twice with the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counterOpts := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}
	}

	return &Metrics{
		messagesSent: factory.NewCounterVec(
			counterOpts("messages_sent_total", "Watchtower messages sent, by message type."),
			[]string{"type"}),
		messagesReceived: factory.NewCounterVec(
			counterOpts("messages_received_total", "Watchtower messages received, by message type."),
			[]string{"type"}),
		decodeErrors: factory.NewCounterVec(
			counterOpts("decode_errors_total", "Inbound frames that failed to decode, by error kind."),
			[]string{"kind"}),
		bytesSent: factory.NewCounter(
			counterOpts("bytes_sent_total", "Frame bytes written, including length prefixes.")),
		bytesReceived: factory.NewCounter(
			counterOpts("bytes_received_total", "Frame bytes read, including length prefixes.")),
	}
}

func (m *Metrics) sent(msgType string, payloadSize int) {
	if m == nil {
		return
	}
	m.messagesSent.WithLabelValues(msgType).Inc()
	m.bytesSent.Add(float64(FrameSize(payloadSize)))
}

func (m *Metrics) received(msgType string, payloadSize int) {
	if m == nil {
		return
	}
	m.messagesReceived.WithLabelValues(msgType).Inc()
	m.bytesReceived.Add(float64(FrameSize(payloadSize)))
}

func (m *Metrics) decodeFailed(err error) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(errorKind(err)).Inc()
}

// errorKind classifies a receive error for metric labels.
func errorKind(err error) string {
	switch {
	case errors.Is(err, wire.ErrInvalidData):
		return "invalid_data"
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, ErrFrameTruncated):
		return "truncated"
	case errors.Is(err, ErrMessageTooLarge):
		return "too_large"
	case errors.Is(err, ErrMessageEmpty):
		return "empty"
	default:
		return "io"
	}
}
