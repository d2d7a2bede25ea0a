package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommissionMetrics covers the ingestion pipeline end to end.
type CommissionMetrics struct {
	SalesRecordedTotal     prometheus.CounterVec
	SalesRecordedAmount    prometheus.CounterVec
	DuplicateSalesTotal    prometheus.CounterVec
	UnattributedSalesTotal prometheus.Counter
	AmbiguousMatchesTotal  prometheus.Counter

	SplitsCreatedTotal    prometheus.CounterVec
	CommissionAmountTotal prometheus.CounterVec

	ImportRowsTotal prometheus.CounterVec

	IngestDuration prometheus.HistogramVec
}

func NewCommissionMetrics() *CommissionMetrics {
	return &CommissionMetrics{
		SalesRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_recorded_total",
				Help: "Sales accepted into the ledger",
			},
			[]string{"source"},
		),

		SalesRecordedAmount: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_recorded_amount_total",
				Help: "Gross sale amount accepted into the ledger",
			},
			[]string{"source"},
		),

		DuplicateSalesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duplicate_sales_total",
				Help: "Ingestion attempts skipped because the external sale id was already recorded",
			},
			[]string{"source"},
		),

		UnattributedSalesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "unattributed_sales_total",
				Help: "Webhook sales recorded with no matching contributor",
			},
		),

		AmbiguousMatchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ambiguous_affiliate_matches_total",
				Help: "Affiliate ids that matched more than one approved application",
			},
		),

		SplitsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_splits_created_total",
				Help: "Commission split rows written",
			},
			[]string{"source"},
		),

		CommissionAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_amount_total",
				Help: "Commission amount allocated to contributors",
			},
			[]string{"source"},
		),

		ImportRowsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "CSV import rows by outcome",
			},
			[]string{"result"},
		),

		IngestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sale_ingest_duration_seconds",
				Help:    "Time to normalize, attribute and record one sale",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}
