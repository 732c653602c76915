package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/webview", func(r chi.Router) {
		r.Get("/snapshot", h.getSnapshot)
		r.Get("/script", h.getInjectionScript)
		r.Get("/url", h.getTokenizedURL)
		r.Get("/config", h.getEmbedConfig)
		r.Get("/props", h.getEmbedProps)
		r.Get("/injection", h.getInjectionSettings)
		r.Post("/messages", h.postWebViewMessage)
	})

	router.Route("/api/diagnostics", func(r chi.Router) {
		r.Get("/", h.getDiagnostics)
		r.Get("/report", h.getFormattedReport)
		r.Get("/probe", h.getCapabilityProbe)
		r.Get("/probe-script", h.getProbeScript)
	})

	router.Route("/api/consent", func(r chi.Router) {
		r.Post("/initialize", h.initialize)
		r.Post("/setup-ui", h.setupUI)
		r.Post("/deny-tracking", h.denyTracking)
		r.Post("/show", h.showConsentScreen)
		r.Post("/clear", h.clearConsent)
		r.Get("/token", h.getToken)
		r.Get("/platform-version", h.getPlatformVersion)
		r.Post("/append-token-url", h.appendTokenURL)
	})

	router.Post("/api/events/{event}", h.postEvent)

	// routes with support authorization
	router.Route("/api/support", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/reports", h.listReports)
		r.Get("/sync-results", h.listSyncResults)
		r.Get("/capabilities", h.listCapabilityResults)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
