package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RegistrationMutations counts ledger mutations by operation and result.
var RegistrationMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "eventcore",
	Subsystem: "ledger",
	Name:      "registration_mutations_total",
	Help:      "Number of registration ledger mutations",
}, []string{"operation", "result"})

// CertificateIssuance counts certificate issuance outcomes.
var CertificateIssuance = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "eventcore",
	Subsystem: "certificate",
	Name:      "issuance_total",
	Help:      "Number of certificate issuance attempts",
}, []string{"result"})

// RegisteredCountRecounts counts recomputations of the registered count.
var RegisteredCountRecounts = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "eventcore",
	Subsystem: "ledger",
	Name:      "recounts_total",
	Help:      "Number of registered count recomputations",
})

// ResultLabel returns the result label for a mutation error.
func ResultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
