package usecase

import (
	"errors"
	"log/slog"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/kafka"
	"github.com/clipwave/commission-service/internal/infrastructure/metrics"
	saledto "github.com/clipwave/commission-service/internal/usecase/dto/sale"
	"github.com/google/uuid"
)

// SaleEventPublisher is what the ingestion path needs from the event bus.
type SaleEventPublisher interface {
	PublishSaleRecorded(topic string, event kafka.SaleRecordedEvent) error
}

type SaleUsecase interface {
	IngestWebhookSale(payload *saledto.WebhookSalePayload) (*saledto.IngestResult, error)
}

type DefaultSaleUsecase struct {
	saleRepo   domain.SaleRepository
	resolver   *DefaultAttributionResolver
	normalizer *Normalizer
	calculator *SplitCalculator
	publisher  SaleEventPublisher
	topic      string
	metrics    *metrics.CommissionMetrics
}

func NewDefaultSaleUsecase(
	saleRepo domain.SaleRepository,
	resolver *DefaultAttributionResolver,
	normalizer *Normalizer,
	calculator *SplitCalculator,
	publisher SaleEventPublisher,
	topic string,
	commissionMetrics *metrics.CommissionMetrics,
) *DefaultSaleUsecase {
	return &DefaultSaleUsecase{
		saleRepo:   saleRepo,
		resolver:   resolver,
		normalizer: normalizer,
		calculator: calculator,
		publisher:  publisher,
		topic:      topic,
		metrics:    commissionMetrics,
	}
}

// IngestWebhookSale runs the webhook path: normalize, attribute, split,
// record. Duplicate delivery is a no-op, an attribution miss still records
// the sale with zero splits.
func (uc *DefaultSaleUsecase) IngestWebhookSale(payload *saledto.WebhookSalePayload) (*saledto.IngestResult, error) {
	if payload.Type != "paid" {
		return &saledto.IngestResult{Skipped: true}, nil
	}
	started := time.Now()

	sale, err := uc.normalizer.FromWebhook(payload)
	if err != nil {
		return nil, err
	}
	sale.ID = uuid.NewString()
	sale.CreatedAt = time.Now().UTC()

	attribution, err := uc.resolver.Resolve(sale.AffiliateID)
	if err != nil {
		return nil, err
	}

	var splits []*domain.CommissionSplit
	if attribution.Matched {
		splits, err = uc.calculator.DirectSplit(sale, attribution.ContributorID)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.saleRepo.RecordSaleWithSplits(sale, splits); err != nil {
		if errors.Is(err, domain.ErrDuplicateSale) {
			if uc.metrics != nil {
				uc.metrics.DuplicateSalesTotal.WithLabelValues(string(domain.SaleSourceWebhook)).Inc()
			}
			return &saledto.IngestResult{AlreadyProcessed: true, SaleID: sale.ExternalSaleID}, nil
		}
		return nil, err
	}

	result := &saledto.IngestResult{
		SaleID:        sale.ID,
		Attributed:    attribution.Matched,
		ContributorID: attribution.ContributorID,
	}
	if len(splits) > 0 {
		result.SplitID = splits[0].ID
	}

	uc.observeRecorded(sale, splits, attribution, started)
	uc.publishRecorded(sale, len(splits))

	return result, nil
}

func (uc *DefaultSaleUsecase) observeRecorded(sale *domain.SaleRecord, splits []*domain.CommissionSplit, attribution *AttributionResult, started time.Time) {
	if uc.metrics == nil {
		return
	}
	source := string(sale.Source)
	uc.metrics.SalesRecordedTotal.WithLabelValues(source).Inc()
	uc.metrics.SalesRecordedAmount.WithLabelValues(source).Add(sale.SaleAmount)
	uc.metrics.IngestDuration.WithLabelValues(source).Observe(time.Since(started).Seconds())
	if !attribution.Matched {
		uc.metrics.UnattributedSalesTotal.Inc()
	}
	if attribution.Ambiguous {
		uc.metrics.AmbiguousMatchesTotal.Inc()
	}
	for _, split := range splits {
		uc.metrics.SplitsCreatedTotal.WithLabelValues(source).Inc()
		uc.metrics.CommissionAmountTotal.WithLabelValues(source).Add(split.CommissionAmount)
	}
}

// Event delivery is best effort: the ledger write already committed, so a
// broker outage must not fail the request.
func (uc *DefaultSaleUsecase) publishRecorded(sale *domain.SaleRecord, splitCount int) {
	if uc.publisher == nil {
		return
	}
	event := kafka.SaleRecordedEvent{
		SaleID:         sale.ID,
		ExternalSaleID: sale.ExternalSaleID,
		Source:         string(sale.Source),
		ProjectID:      sale.ProjectID,
		SaleAmount:     sale.SaleAmount,
		CommissionPool: sale.CommissionPool,
		SplitCount:     splitCount,
	}
	if err := uc.publisher.PublishSaleRecorded(uc.topic, event); err != nil {
		slog.Error("failed to publish sale event", "sale_id", sale.ID, "error", err)
	}
}
