package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	saledto "github.com/clipwave/commission-service/internal/usecase/dto/sale"
)

// DefaultFlatRatePercent is the commission rate applied when neither the CSV
// row nor project assignments supply one.
const DefaultFlatRatePercent = 10.0

// csvAliases maps each canonical column to the header spellings the partner
// platform's exports have been seen to use. Matching is case-insensitive.
var csvAliases = map[string][]string{
	"sale_id":           {"sale_id", "order_id"},
	"sale_amount":       {"sale_amount", "amount"},
	"commission_amount": {"commission_amount", "commission"},
	"sale_date":         {"sale_date", "date"},
	"product_name":      {"product_name", "product"},
	"buyer_email":       {"buyer_email", "email"},
	"affiliate_id":      {"affiliate_id"},
}

var csvDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Normalizer struct {
	flatRatePercent float64
	now             func() time.Time
}

func NewNormalizer(flatRatePercent float64) *Normalizer {
	if flatRatePercent <= 0 {
		flatRatePercent = DefaultFlatRatePercent
	}
	return &Normalizer{
		flatRatePercent: flatRatePercent,
		now:             time.Now,
	}
}

func (n *Normalizer) FlatRatePercent() float64 {
	return n.flatRatePercent
}

// FromWebhook converts a "paid" webhook payload into a ledger-ready draft.
// The commission pool is the flat rate applied to the gross amount.
func (n *Normalizer) FromWebhook(payload *saledto.WebhookSalePayload) (*domain.SaleRecord, error) {
	if payload.SaleID == "" {
		return nil, &domain.MissingFieldError{Field: "sale_id"}
	}
	if payload.SaleAmount <= 0 {
		return nil, &domain.MissingFieldError{Field: "sale_amount"}
	}
	if payload.AffiliateID == "" {
		return nil, &domain.MissingFieldError{Field: "affiliate_id"}
	}

	buyerEmail := payload.BuyerEmail
	if buyerEmail == "" {
		buyerEmail = payload.CustomerEmail
	}

	saleDate := n.now().UTC()
	if payload.Date > 0 {
		saleDate = time.Unix(payload.Date, 0).UTC()
	}

	return &domain.SaleRecord{
		ExternalSaleID: payload.SaleID,
		ProductName:    payload.ProductName,
		SaleAmount:     payload.SaleAmount,
		AffiliateID:    payload.AffiliateID,
		BuyerEmail:     buyerEmail,
		SaleDate:       saleDate,
		CommissionPool: RoundToCents(payload.SaleAmount * n.flatRatePercent / 100),
		Source:         domain.SaleSourceWebhook,
	}, nil
}

// CSVHeader resolves canonical columns to positions in one export's header
// line, tolerating alias spellings and arbitrary column order.
type CSVHeader struct {
	index map[string]int
}

func ParseCSVHeader(fields []string) CSVHeader {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		byName[strings.ToLower(strings.TrimSpace(f))] = i
	}
	index := make(map[string]int)
	for canonical, aliases := range csvAliases {
		for _, alias := range aliases {
			if i, ok := byName[alias]; ok {
				index[canonical] = i
				break
			}
		}
	}
	return CSVHeader{index: index}
}

func (h CSVHeader) value(record []string, column string) string {
	i, ok := h.index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// FromCSVRow converts one data row into a ledger-ready draft tied to the
// given project. A CSV-supplied commission amount wins over the flat rate.
func (n *Normalizer) FromCSVRow(header CSVHeader, record []string, line int, projectID string) (*domain.SaleRecord, error) {
	externalID := header.value(record, "sale_id")
	if externalID == "" {
		return nil, &domain.MissingFieldError{Field: "sale_id"}
	}

	rawAmount := header.value(record, "sale_amount")
	if rawAmount == "" {
		return nil, &domain.MissingFieldError{Field: "sale_amount"}
	}
	saleAmount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return nil, &domain.MalformedRowError{Line: line, Reason: "non-numeric sale amount: " + rawAmount}
	}

	commissionPool := RoundToCents(saleAmount * n.flatRatePercent / 100)
	if rawCommission := header.value(record, "commission_amount"); rawCommission != "" {
		pool, err := strconv.ParseFloat(rawCommission, 64)
		if err != nil {
			return nil, &domain.MalformedRowError{Line: line, Reason: "non-numeric commission amount: " + rawCommission}
		}
		commissionPool = RoundToCents(pool)
	}

	saleDate := n.now().UTC()
	if rawDate := header.value(record, "sale_date"); rawDate != "" {
		for _, layout := range csvDateLayouts {
			if parsed, err := time.Parse(layout, rawDate); err == nil {
				saleDate = parsed.UTC()
				break
			}
		}
	}

	return &domain.SaleRecord{
		ExternalSaleID: externalID,
		ProductName:    header.value(record, "product_name"),
		SaleAmount:     saleAmount,
		AffiliateID:    header.value(record, "affiliate_id"),
		BuyerEmail:     header.value(record, "buyer_email"),
		SaleDate:       saleDate,
		ProjectID:      projectID,
		CommissionPool: commissionPool,
		Source:         domain.SaleSourceCSVImport,
	}, nil
}
