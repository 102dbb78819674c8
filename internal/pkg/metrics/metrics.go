package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once
	reg  *prometheus.Registry

	admissionDecisions *prometheus.CounterVec
	runnerLaunches     *prometheus.CounterVec
	ingestedEvents     *prometheus.CounterVec
)

func Reg() *prometheus.Registry {
	once.Do(func() {
		reg = prometheus.NewRegistry()

		admissionDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gantry",
			Subsystem: "admission",
			Name:      "decisions_total",
			Help:      "Admission decisions by outcome.",
		}, []string{"outcome"})

		runnerLaunches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gantry",
			Subsystem: "provisioner",
			Name:      "launches_total",
			Help:      "Runner launch attempts by status.",
		}, []string{"status"})

		ingestedEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gantry",
			Subsystem: "ingest",
			Name:      "events_total",
			Help:      "Webhook events by type and intent.",
		}, []string{"event", "intent"})

		reg.MustRegister(admissionDecisions, runnerLaunches, ingestedEvents)
	})

	return reg
}

func RecordDecision(outcome string) {
	Reg()
	admissionDecisions.WithLabelValues(outcome).Inc()
}

func RecordLaunch(status string) {
	Reg()
	runnerLaunches.WithLabelValues(status).Inc()
}

func RecordEvent(event, intent string) {
	Reg()
	ingestedEvents.WithLabelValues(event, intent).Inc()
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Reg(), promhttp.HandlerOpts{})
}
