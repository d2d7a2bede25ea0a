package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/clipwave/commission-service/internal/config"
	deliveryhttp "github.com/clipwave/commission-service/internal/delivery/http"
	"github.com/clipwave/commission-service/internal/delivery/http/handlers"
	"github.com/clipwave/commission-service/internal/infrastructure/kafka"
	"github.com/clipwave/commission-service/internal/infrastructure/metrics"
	"github.com/clipwave/commission-service/internal/infrastructure/migrate"
	"github.com/clipwave/commission-service/internal/infrastructure/partner"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/repository"
	"github.com/clipwave/commission-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.CommissionDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.CommissionDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	saleRepo := repository.NewDefaultSaleRepository(db)
	splitRepo := repository.NewDefaultSplitRepository(db)
	assignmentRepo := repository.NewDefaultAssignmentRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	applicationRepo := repository.NewDefaultApplicationRepository(db)

	commissionMetrics := metrics.NewCommissionMetrics()

	// Event publishing is optional; the ledger works without a broker.
	var publisher usecase.SaleEventPublisher
	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		publisher = kafka.NewKafkaPublisher(brokers)
	}

	// Init pipeline pieces
	normalizer := usecase.NewNormalizer(cfg.Commission.FlatRatePercent)
	calculator := usecase.NewSplitCalculator(cfg.Commission.FlatRatePercent)
	resolver := usecase.NewDefaultAttributionResolver(applicationRepo)

	// Init usecases
	saleUsecase := usecase.NewDefaultSaleUsecase(
		saleRepo,
		resolver,
		normalizer,
		calculator,
		publisher,
		cfg.KafkaService.Topic,
		commissionMetrics,
	)
	importUsecase := usecase.NewDefaultImportUsecase(
		saleRepo,
		assignmentRepo,
		normalizer,
		calculator,
		commissionMetrics,
	)
	assignmentUsecase := usecase.NewDefaultAssignmentUsecase(assignmentRepo)
	payoutUsecase := usecase.NewDefaultPayoutUsecase(payoutRepo)
	summaryUsecase := usecase.NewDefaultSummaryUsecase(splitRepo, saleRepo, payoutRepo)
	applicationUsecase := usecase.NewDefaultApplicationUsecase(applicationRepo)

	verifier := partner.NewLinkVerifier(cfg.Partner.Domain, cfg.Partner.VerifyTimeout)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Webhook:    handlers.NewWebhookHandler(saleUsecase, cfg.Webhook.Secret),
		Import:     handlers.NewImportHandler(importUsecase),
		Summary:    handlers.NewSummaryHandler(summaryUsecase),
		Payout:     handlers.NewPayoutHandler(payoutUsecase),
		Assignment: handlers.NewAssignmentHandler(assignmentUsecase),
		Affiliate:  handlers.NewAffiliateHandler(verifier, applicationUsecase),
		AdminToken: cfg.AdminAPI.Token,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	log.Printf("commission service started on %s:%s\n", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
