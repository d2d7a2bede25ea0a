package usecase

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/metrics"
	importdto "github.com/clipwave/commission-service/internal/usecase/dto/imports"
	"github.com/google/uuid"
)

type ImportUsecase interface {
	ImportProjectSales(caller domain.Caller, input *importdto.ImportInput) (*importdto.ImportReport, error)
}

type DefaultImportUsecase struct {
	saleRepo       domain.SaleRepository
	assignmentRepo domain.AssignmentRepository
	normalizer     *Normalizer
	calculator     *SplitCalculator
	metrics        *metrics.CommissionMetrics
}

func NewDefaultImportUsecase(
	saleRepo domain.SaleRepository,
	assignmentRepo domain.AssignmentRepository,
	normalizer *Normalizer,
	calculator *SplitCalculator,
	commissionMetrics *metrics.CommissionMetrics,
) *DefaultImportUsecase {
	return &DefaultImportUsecase{
		saleRepo:       saleRepo,
		assignmentRepo: assignmentRepo,
		normalizer:     normalizer,
		calculator:     calculator,
		metrics:        commissionMetrics,
	}
}

// ImportProjectSales processes one CSV export against a project's contributor
// assignments. Rows are independent: a malformed row is skipped and reported,
// a duplicate sale id is a silent no-op, and re-running the whole batch is
// idempotent.
func (uc *DefaultImportUsecase) ImportProjectSales(caller domain.Caller, input *importdto.ImportInput) (*importdto.ImportReport, error) {
	if !caller.HasRole(domain.RoleAdmin) {
		return nil, domain.ErrPermissionDenied
	}
	if input.ProjectID == "" {
		return nil, &domain.MissingFieldError{Field: "videoId"}
	}

	assignments, err := uc.assignmentRepo.ListByProjectID(input.ProjectID)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(input.CSVData))
	reader.TrimLeadingSpace = true

	headerFields, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	header := ParseCSVHeader(headerFields)

	report := &importdto.ImportReport{}
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Total++
			uc.reportFailure(report, line, err.Error())
			continue
		}
		report.Total++

		if err := uc.importRow(header, record, line, input.ProjectID, assignments); err != nil {
			if errors.Is(err, domain.ErrDuplicateSale) {
				report.Duplicates++
				uc.countRow("duplicate")
				continue
			}
			var missing *domain.MissingFieldError
			var malformed *domain.MalformedRowError
			if errors.As(err, &missing) || errors.As(err, &malformed) {
				uc.reportFailure(report, line, err.Error())
				continue
			}
			// Storage failure: already-committed rows stay committed, the
			// caller retries the batch and dedup skips them.
			return nil, err
		}
		report.Imported++
		uc.countRow("imported")
	}

	return report, nil
}

func (uc *DefaultImportUsecase) importRow(
	header CSVHeader,
	record []string,
	line int,
	projectID string,
	assignments []*domain.ProjectContributorAssignment,
) error {
	sale, err := uc.normalizer.FromCSVRow(header, record, line, projectID)
	if err != nil {
		return err
	}
	sale.ID = uuid.NewString()
	sale.CreatedAt = time.Now().UTC()

	splits, err := uc.calculator.ProjectSplits(sale, assignments)
	if err != nil {
		return err
	}

	return uc.saleRepo.RecordSaleWithSplits(sale, splits)
}

func (uc *DefaultImportUsecase) reportFailure(report *importdto.ImportReport, line int, reason string) {
	slog.Warn("skipping csv row", "row", line, "reason", reason)
	report.Failures = append(report.Failures, importdto.RowFailure{Row: line, Reason: reason})
	uc.countRow("failed")
}

func (uc *DefaultImportUsecase) countRow(result string) {
	if uc.metrics != nil {
		uc.metrics.ImportRowsTotal.WithLabelValues(result).Inc()
	}
}
