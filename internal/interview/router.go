package interview

import (
	"net/http"
	"time"

	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/health"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/metrics"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/middleware"
)

// NewRouter builds the full HTTP handler with all routes and middleware.
//
// Route table:
//
//	POST /api/v1/interviews               → start an interview
//	POST /api/v1/interviews/{id}/answers  → submit an answer
//	GET  /api/v1/interviews/{id}/summary  → end-of-session summary
//	GET  /health/live                     → liveness probe
//	GET  /health/ready                    → readiness probe
//
// Middleware chain (outermost first): RequestID → Metrics → Timeout → mux.
func NewRouter(h *Handler, checker *health.Checker, m *metrics.Metrics, timeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/interviews", h.StartInterview)
	mux.HandleFunc("POST /api/v1/interviews/{id}/answers", h.SubmitAnswer)
	mux.HandleFunc("GET /api/v1/interviews/{id}/summary", h.Summary)

	mux.HandleFunc("GET /health/live", checker.LiveHandler())
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler())

	var chain http.Handler = mux
	chain = middleware.Timeout(timeout)(chain)
	if m != nil {
		chain = middleware.Metrics(m)(chain)
	}
	chain = middleware.RequestID(chain)
	return chain
}
