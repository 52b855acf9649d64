package metrics

import (
	"net/http"

	"github.com/bornholm/upline/internal/ui/menu"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "upline"

// Metrics holds the application collectors, registered on their own registry.
type Metrics struct {
	registry           *prometheus.Registry
	menuTransitions    *prometheus.CounterVec
	navigations        *prometheus.CounterVec
	members            prometheus.GaugeFunc
	registrations      prometheus.Counter
	loginAttempts      *prometheus.CounterVec
	contactSubmissions prometheus.Counter
}

type CountFunc func() float64

func New(countMembers CountFunc) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		menuTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_transitions_total",
			Help:      "Total mobile menu events, by resulting transition",
		}, []string{"event", "from", "to"}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Total navigations triggered from the mobile menu",
		}, []string{"path"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "registrations_total",
			Help:      "Total member registrations",
		}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Total password login attempts",
		}, []string{"status"}),
		contactSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Total contact form submissions",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.menuTransitions,
		m.navigations,
		m.registrations,
		m.loginAttempts,
		m.contactSubmissions,
	)

	if countMembers != nil {
		m.members = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "members",
			Help:      "Number of registered members",
		}, countMembers)

		registry.MustRegister(m.members)
	}

	return m
}

// MenuOptions returns the mobile menu hooks feeding the transition and navigation counters.
func (m *Metrics) MenuOptions() []menu.OptionFunc {
	return []menu.OptionFunc{
		menu.WithOnTransition(func(event menu.EventType, from, to menu.State) {
			m.menuTransitions.WithLabelValues(string(event), from.String(), to.String()).Inc()
		}),
		menu.WithOnNavigate(func(path string) {
			m.navigations.WithLabelValues(path).Inc()
		}),
	}
}

func (m *Metrics) ObserveRegistration() {
	m.registrations.Inc()
}

func (m *Metrics) ObserveLogin(success bool) {
	status := "failure"
	if success {
		status = "success"
	}

	m.loginAttempts.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveContactMessage() {
	m.contactSubmissions.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
