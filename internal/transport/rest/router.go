package rest

import (
	"net/http"
)

// NewRouter builds the HTTP route table. Middleware is applied by the
// caller around the returned handler.
func NewRouter(forms *FormHandler, analyses *AnalysisHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)

	mux.HandleFunc("POST /api/v1/forms", forms.Create)
	mux.HandleFunc("GET /api/v1/forms/{id}", forms.Get)
	mux.HandleFunc("PUT /api/v1/forms/{id}", forms.Update)
	mux.HandleFunc("DELETE /api/v1/forms/{id}", forms.Delete)

	mux.HandleFunc("POST /api/v1/forms/{id}/responses", forms.SubmitResponse)
	mux.HandleFunc("GET /api/v1/forms/{id}/responses", forms.ListResponses)

	mux.HandleFunc("POST /api/v1/forms/{id}/analyze", analyses.Analyze)
	mux.HandleFunc("GET /api/v1/forms/{id}/analysis", analyses.Get)

	return mux
}
