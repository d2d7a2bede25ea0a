package http

import (
	"net/http"

	"github.com/clipwave/commission-service/internal/delivery/http/handlers"
	"github.com/clipwave/commission-service/internal/delivery/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Webhook    *handlers.WebhookHandler
	Import     *handlers.ImportHandler
	Summary    *handlers.SummaryHandler
	Payout     *handlers.PayoutHandler
	Assignment *handlers.AssignmentHandler
	Affiliate  *handlers.AffiliateHandler
	AdminToken string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Signature"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Partner-facing: authenticated by webhook signature, not bearer token.
	r.Post("/webhooks/sales", deps.Webhook.HandleSaleWebhook)

	// Onboarding check, called before an application exists.
	r.Post("/affiliate/verify", deps.Affiliate.HandleVerifyLink)

	r.Get("/contributors/{contributorID}/summary", deps.Summary.HandleGetSummary)
	r.Get("/contributors/{contributorID}/payouts", deps.Payout.HandleListPayouts)
	r.Get("/projects/{projectID}/contributors", deps.Assignment.HandleListContributors)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(deps.AdminToken))

		r.Post("/imports/sales", deps.Import.HandleImportSales)
		r.Post("/contributors/{contributorID}/payouts", deps.Payout.HandleCreatePayout)
		r.Patch("/payouts/{payoutID}/status", deps.Payout.HandleUpdatePayoutStatus)
		r.Post("/projects/{projectID}/contributors", deps.Assignment.HandleAddContributor)
		r.Post("/affiliate/links", deps.Affiliate.HandleRegisterLink)
	})

	return r
}
