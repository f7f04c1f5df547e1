package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "healthy"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Endpoint identifies the configured retrieval store.
type Endpoint struct {
	Host       string
	Port       int
	Collection string
}

// Report aggregates health check results.
type Report struct {
	Status   Status
	Checks   map[string]CheckResult
	Endpoint Endpoint
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	embedding EmbeddingChecker
	endpoint  Endpoint
}

// New creates a Service. embedding can be nil.
func New(db DBPinger, embedding EmbeddingChecker, endpoint Endpoint) *Service {
	return &Service{db: db, embedding: embedding, endpoint: endpoint}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["vector_store"] = CheckError
	} else {
		checks["vector_store"] = CheckOK
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			checks["embedder"] = CheckError
		} else {
			checks["embedder"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, Endpoint: s.endpoint}
}
