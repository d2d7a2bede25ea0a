package usecase

import (
	"testing"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/kafka"
	saledto "github.com/clipwave/commission-service/internal/usecase/dto/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	events []kafka.SaleRecordedEvent
}

func (p *fakePublisher) PublishSaleRecorded(topic string, event kafka.SaleRecordedEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newSaleUsecase(saleRepo *fakeSaleRepo, appRepo *fakeApplicationRepo, publisher SaleEventPublisher) *DefaultSaleUsecase {
	return NewDefaultSaleUsecase(
		saleRepo,
		NewDefaultAttributionResolver(appRepo),
		NewNormalizer(10),
		NewSplitCalculator(10),
		publisher,
		"sale-events",
		nil,
	)
}

func paidPayload(saleID string) *saledto.WebhookSalePayload {
	return &saledto.WebhookSalePayload{
		Type:        "paid",
		SaleID:      saleID,
		ProductName: "Preset Pack",
		SaleAmount:  100.00,
		AffiliateID: "aff-9",
		BuyerEmail:  "b@example.com",
	}
}

func TestIngestWebhookSaleAttributed(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	appRepo := &fakeApplicationRepo{applications: []*domain.CreatorApplication{
		{ContributorID: "c9", AffiliateLink: "https://partner.example.com/ref/aff-9"},
	}}
	publisher := &fakePublisher{}
	uc := newSaleUsecase(saleRepo, appRepo, publisher)

	result, err := uc.IngestWebhookSale(paidPayload("ext-1"))
	require.NoError(t, err)
	assert.True(t, result.Attributed)
	assert.Equal(t, "c9", result.ContributorID)
	assert.NotEmpty(t, result.SplitID)

	splits := saleRepo.splitsForSale(result.SaleID)
	require.Len(t, splits, 1)
	assert.Equal(t, 10.00, splits[0].CommissionAmount)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "ext-1", publisher.events[0].ExternalSaleID)
	assert.Equal(t, 1, publisher.events[0].SplitCount)
}

func TestIngestWebhookSaleIdempotent(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	appRepo := &fakeApplicationRepo{applications: []*domain.CreatorApplication{
		{ContributorID: "c9", AffiliateLink: "https://partner.example.com/ref/aff-9"},
	}}
	uc := newSaleUsecase(saleRepo, appRepo, nil)

	first, err := uc.IngestWebhookSale(paidPayload("ext-2"))
	require.NoError(t, err)
	assert.False(t, first.AlreadyProcessed)

	second, err := uc.IngestWebhookSale(paidPayload("ext-2"))
	require.NoError(t, err)
	assert.True(t, second.AlreadyProcessed)

	// Exactly one sale and one set of splits survived both deliveries.
	assert.Len(t, saleRepo.salesByExternalID, 1)
	assert.Len(t, saleRepo.splits, 1)
}

func TestIngestWebhookSaleUnattributed(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	uc := newSaleUsecase(saleRepo, &fakeApplicationRepo{}, nil)

	result, err := uc.IngestWebhookSale(paidPayload("ext-3"))
	require.NoError(t, err)
	assert.False(t, result.Attributed)
	assert.NotEmpty(t, result.SaleID)

	// Sale recorded for revenue bookkeeping, zero splits.
	sale, err := saleRepo.GetSaleByExternalID("ext-3")
	require.NoError(t, err)
	assert.Empty(t, saleRepo.splitsForSale(sale.ID))
}

func TestIngestWebhookSaleIgnoresNonPaidEvents(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	uc := newSaleUsecase(saleRepo, &fakeApplicationRepo{}, nil)

	payload := paidPayload("ext-4")
	payload.Type = "refunded"

	result, err := uc.IngestWebhookSale(payload)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, saleRepo.salesByExternalID)
}

func TestIngestWebhookSaleMissingField(t *testing.T) {
	uc := newSaleUsecase(newFakeSaleRepo(), &fakeApplicationRepo{}, nil)

	payload := paidPayload("ext-5")
	payload.AffiliateID = ""

	_, err := uc.IngestWebhookSale(payload)
	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "affiliate_id", missing.Field)
}
