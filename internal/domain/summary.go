package domain

// ContributorSummary is the read-side rollup shown on contributor dashboards.
// Recomputed on every call; nothing is materialized.
type ContributorSummary struct {
	ContributorID   string
	TotalCommission float64
	TotalSales      float64
	PendingPayout   float64
	ProjectsCount   int
}

type SummaryUsecase interface {
	ComputeContributorSummary(contributorID string) (*ContributorSummary, error)
}
