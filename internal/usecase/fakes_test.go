package usecase

import (
	"github.com/clipwave/commission-service/internal/domain"
)

// In-memory repositories mirroring the storage-layer contracts, including
// the unique-external-id behavior of the real ledger.

type fakeSaleRepo struct {
	salesByExternalID map[string]*domain.SaleRecord
	salesByID         map[string]*domain.SaleRecord
	splits            []*domain.CommissionSplit
	recordErr         error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		salesByExternalID: make(map[string]*domain.SaleRecord),
		salesByID:         make(map[string]*domain.SaleRecord),
	}
}

func (r *fakeSaleRepo) RecordSaleWithSplits(sale *domain.SaleRecord, splits []*domain.CommissionSplit) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	if _, exists := r.salesByExternalID[sale.ExternalSaleID]; exists {
		return domain.ErrDuplicateSale
	}
	r.salesByExternalID[sale.ExternalSaleID] = sale
	r.salesByID[sale.ID] = sale
	for _, split := range splits {
		split.SaleID = sale.ID
		r.splits = append(r.splits, split)
	}
	return nil
}

func (r *fakeSaleRepo) GetSaleByExternalID(externalSaleID string) (*domain.SaleRecord, error) {
	sale, ok := r.salesByExternalID[externalSaleID]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

func (r *fakeSaleRepo) GetSaleByID(saleID string) (*domain.SaleRecord, error) {
	sale, ok := r.salesByID[saleID]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

func (r *fakeSaleRepo) GetSalesByIDs(saleIDs []string) ([]*domain.SaleRecord, error) {
	var sales []*domain.SaleRecord
	for _, id := range saleIDs {
		if sale, ok := r.salesByID[id]; ok {
			sales = append(sales, sale)
		}
	}
	return sales, nil
}

func (r *fakeSaleRepo) splitsForSale(saleID string) []*domain.CommissionSplit {
	var out []*domain.CommissionSplit
	for _, split := range r.splits {
		if split.SaleID == saleID {
			out = append(out, split)
		}
	}
	return out
}

type fakeSplitRepo struct {
	splits []*domain.CommissionSplit
}

func (r *fakeSplitRepo) GetSplitsByContributorID(contributorID string) ([]*domain.CommissionSplit, error) {
	var out []*domain.CommissionSplit
	for _, split := range r.splits {
		if split.ContributorID == contributorID {
			out = append(out, split)
		}
	}
	return out, nil
}

func (r *fakeSplitRepo) GetSplitsBySaleID(saleID string) ([]*domain.CommissionSplit, error) {
	var out []*domain.CommissionSplit
	for _, split := range r.splits {
		if split.SaleID == saleID {
			out = append(out, split)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	applications []*domain.CreatorApplication
	err          error
}

func (r *fakeApplicationRepo) CreateApplication(application *domain.CreatorApplication) error {
	r.applications = append(r.applications, application)
	return nil
}

func (r *fakeApplicationRepo) GetApprovedApplications() ([]*domain.CreatorApplication, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.applications, nil
}

type fakeAssignmentRepo struct {
	assignments []*domain.ProjectContributorAssignment
}

func (r *fakeAssignmentRepo) CreateAssignment(assignment *domain.ProjectContributorAssignment) error {
	r.assignments = append(r.assignments, assignment)
	return nil
}

func (r *fakeAssignmentRepo) ListByProjectID(projectID string) ([]*domain.ProjectContributorAssignment, error) {
	var out []*domain.ProjectContributorAssignment
	for _, assignment := range r.assignments {
		if assignment.ProjectID == projectID {
			out = append(out, assignment)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) GetByProjectContributorRole(projectID, contributorID, role string) (*domain.ProjectContributorAssignment, error) {
	for _, assignment := range r.assignments {
		if assignment.ProjectID == projectID &&
			assignment.ContributorID == contributorID &&
			assignment.Role == role {
			return assignment, nil
		}
	}
	return nil, domain.ErrAssignmentNotFound
}

type fakePayoutRepo struct {
	payouts map[string]*domain.PayoutRecord
}

func newFakePayoutRepo() *fakePayoutRepo {
	return &fakePayoutRepo{payouts: make(map[string]*domain.PayoutRecord)}
}

func (r *fakePayoutRepo) CreatePayout(payout *domain.PayoutRecord) error {
	r.payouts[payout.ID] = payout
	return nil
}

func (r *fakePayoutRepo) GetPayoutByID(payoutID string) (*domain.PayoutRecord, error) {
	payout, ok := r.payouts[payoutID]
	if !ok {
		return nil, domain.ErrPayoutNotFound
	}
	return payout, nil
}

func (r *fakePayoutRepo) UpdatePayoutStatus(payoutID string, status domain.PayoutStatus) error {
	payout, ok := r.payouts[payoutID]
	if !ok {
		return domain.ErrPayoutNotFound
	}
	payout.Status = status
	return nil
}

func (r *fakePayoutRepo) GetPayoutsByContributorID(contributorID string) ([]*domain.PayoutRecord, error) {
	var out []*domain.PayoutRecord
	for _, payout := range r.payouts {
		if payout.ContributorID == contributorID {
			out = append(out, payout)
		}
	}
	return out, nil
}

var adminCaller = domain.Caller{ID: "admin-1", Roles: []string{domain.RoleAdmin}}
