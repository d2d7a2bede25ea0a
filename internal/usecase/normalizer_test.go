package usecase

import (
	"testing"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	saledto "github.com/clipwave/commission-service/internal/usecase/dto/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWebhook(t *testing.T) {
	n := NewNormalizer(10)

	payload := &saledto.WebhookSalePayload{
		Type:        "paid",
		SaleID:      "ext-100",
		ProductName: "Course Bundle",
		SaleAmount:  100.00,
		AffiliateID: "aff-42",
		BuyerEmail:  "buyer@example.com",
		Date:        1700000000,
	}

	sale, err := n.FromWebhook(payload)
	require.NoError(t, err)
	assert.Equal(t, "ext-100", sale.ExternalSaleID)
	assert.Equal(t, 100.00, sale.SaleAmount)
	assert.Equal(t, 10.00, sale.CommissionPool)
	assert.Equal(t, domain.SaleSourceWebhook, sale.Source)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), sale.SaleDate)
}

func TestFromWebhookCustomerEmailFallback(t *testing.T) {
	n := NewNormalizer(10)

	sale, err := n.FromWebhook(&saledto.WebhookSalePayload{
		SaleID:        "ext-101",
		SaleAmount:    50,
		AffiliateID:   "aff-1",
		CustomerEmail: "customer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", sale.BuyerEmail)
}

func TestFromWebhookMissingFields(t *testing.T) {
	n := NewNormalizer(10)

	tests := []struct {
		name    string
		payload *saledto.WebhookSalePayload
		field   string
	}{
		{"no sale id", &saledto.WebhookSalePayload{SaleAmount: 10, AffiliateID: "a"}, "sale_id"},
		{"no amount", &saledto.WebhookSalePayload{SaleID: "s", AffiliateID: "a"}, "sale_amount"},
		{"no affiliate id", &saledto.WebhookSalePayload{SaleID: "s", SaleAmount: 10}, "affiliate_id"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.FromWebhook(tc.payload)
			var missing *domain.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.field, missing.Field)
		})
	}
}

func TestFromWebhookDateFallback(t *testing.T) {
	n := NewNormalizer(10)
	before := time.Now().UTC()

	sale, err := n.FromWebhook(&saledto.WebhookSalePayload{
		SaleID: "ext-102", SaleAmount: 10, AffiliateID: "a",
	})
	require.NoError(t, err)
	assert.False(t, sale.SaleDate.Before(before))
}

func TestParseCSVHeaderAliases(t *testing.T) {
	n := NewNormalizer(10)

	// Alias spellings plus mixed case.
	header := ParseCSVHeader([]string{"Order_ID", "Amount", "Commission", "Date", "Product", "Email"})
	record := []string{"ord-1", "200.00", "25.50", "2024-03-01", "Template Pack", "b@example.com"}

	sale, err := n.FromCSVRow(header, record, 2, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", sale.ExternalSaleID)
	assert.Equal(t, 200.00, sale.SaleAmount)
	assert.Equal(t, 25.50, sale.CommissionPool)
	assert.Equal(t, "Template Pack", sale.ProductName)
	assert.Equal(t, "b@example.com", sale.BuyerEmail)
	assert.Equal(t, "proj-1", sale.ProjectID)
	assert.Equal(t, domain.SaleSourceCSVImport, sale.Source)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), sale.SaleDate)
}

func TestFromCSVRowFlatRateWhenNoCommissionColumn(t *testing.T) {
	n := NewNormalizer(10)

	header := ParseCSVHeader([]string{"sale_id", "sale_amount"})
	sale, err := n.FromCSVRow(header, []string{"ord-2", "80.00"}, 2, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, 8.00, sale.CommissionPool)
}

func TestFromCSVRowNonNumericAmount(t *testing.T) {
	n := NewNormalizer(10)

	header := ParseCSVHeader([]string{"sale_id", "sale_amount"})
	_, err := n.FromCSVRow(header, []string{"ord-3", "not-a-number"}, 4, "proj-1")

	var malformed *domain.MalformedRowError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 4, malformed.Line)
}

func TestFromCSVRowMissingSaleID(t *testing.T) {
	n := NewNormalizer(10)

	header := ParseCSVHeader([]string{"sale_id", "sale_amount"})
	_, err := n.FromCSVRow(header, []string{"", "10.00"}, 3, "proj-1")

	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "sale_id", missing.Field)
}
