package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/fuel-server/internal/events"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/operator/actions"
	"github.com/carson-networks/fuel-server/internal/stats"
	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// OperationService handles operation business logic.
type OperationService struct {
	storage   *storage.Storage
	rates     fuel.Resolver
	processor ActionProcessor
	publisher events.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

// NewOperationService creates a new OperationService.
func NewOperationService(
	store *storage.Storage,
	rates fuel.Resolver,
	processor ActionProcessor,
	publisher events.Publisher,
	logger *logrus.Logger,
) *OperationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &OperationService{
		storage:   store,
		rates:     rates,
		processor: processor,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *OperationService) maxYear() int {
	return s.now().Year()
}

// Preview prices in exactly as CreateOperation would, without storing anything.
func (s *OperationService) Preview(ctx context.Context, in fuel.Input) (fuel.Valuation, error) {
	return fuel.Evaluate(s.rates, in, s.maxYear())
}

// CreateOperation validates and prices in, then stores it for userID.
func (s *OperationService) CreateOperation(ctx context.Context, userID uuid.UUID, in fuel.Input) (Operation, error) {
	valuation, err := fuel.Evaluate(s.rates, in, s.maxYear())
	if err != nil {
		return Operation{}, err
	}

	action := &actions.CreateOperation{UserID: userID, Valuation: valuation}
	if err := s.processor.Process(ctx, action); err != nil {
		return Operation{}, err
	}

	op := operationFromRow(action.Result)
	s.publish(ctx, events.OperationCreated, op)
	return op, nil
}

// GetOperation returns the operation id if userID owns it.
func (s *OperationService) GetOperation(ctx context.Context, userID, id uuid.UUID) (Operation, error) {
	row, err := s.storage.Operations.FindByID(ctx, id, false)
	if err != nil {
		return Operation{}, err
	}
	if row == nil || row.UserID != userID {
		return Operation{}, ErrOperationNotFound
	}
	return operationFromRow(row), nil
}

// UpdateOperation applies patch to an owned operation, re-resolving the rate
// only when the rate key changes.
func (s *OperationService) UpdateOperation(ctx context.Context, userID, id uuid.UUID, patch fuel.Patch) (Operation, error) {
	action := &actions.UpdateOperation{
		ID:       id,
		UserID:   userID,
		Patch:    patch,
		Resolver: s.rates,
		MaxYear:  s.maxYear(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return Operation{}, err
	}

	op := operationFromRow(action.Result)
	s.publish(ctx, events.OperationUpdated, op)
	return op, nil
}

// DeleteOperation removes an owned operation.
func (s *OperationService) DeleteOperation(ctx context.Context, userID, id uuid.UUID) error {
	action := &actions.DeleteOperation{ID: id, UserID: userID}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}

	s.publish(ctx, events.OperationDeleted, operationFromRow(action.Deleted))
	return nil
}

// ListOperations returns one page of the user's operations, newest first.
func (s *OperationService) ListOperations(ctx context.Context, userID uuid.UUID, filter OperationFilter) (OperationPage, error) {
	filter = filter.WithDefaults()
	if err := filter.Validate(s.maxYear()); err != nil {
		return OperationPage{}, err
	}
	return s.listPage(ctx, userID, filter)
}

// Statistics summarises every operation of the user matching filter.
func (s *OperationService) Statistics(ctx context.Context, userID uuid.UUID, filter OperationFilter) (stats.Summary, error) {
	filter = filter.WithDefaults()
	if err := filter.Validate(s.maxYear()); err != nil {
		return stats.Summary{}, err
	}
	return s.statistics(ctx, userID, filter)
}

// Difference compares sales against purchases. The type filter is ignored.
func (s *OperationService) Difference(ctx context.Context, userID uuid.UUID, filter OperationFilter) (stats.Difference, error) {
	filter = filter.WithDefaults()
	if err := filter.Validate(s.maxYear()); err != nil {
		return stats.Difference{}, err
	}
	return s.difference(ctx, userID, filter)
}

// Report loads the page, the statistics and the difference concurrently.
func (s *OperationService) Report(ctx context.Context, userID uuid.UUID, filter OperationFilter) (Report, error) {
	filter = filter.WithDefaults()
	if err := filter.Validate(s.maxYear()); err != nil {
		return Report{}, err
	}

	var report Report
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.listPage(gctx, userID, filter)
		report.Operations = page.Operations
		report.Pagination = page.Pagination
		return err
	})
	g.Go(func() error {
		summary, err := s.statistics(gctx, userID, filter)
		report.Statistics = summary
		return err
	})
	g.Go(func() error {
		diff, err := s.difference(gctx, userID, filter)
		report.Difference = diff
		return err
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report.Filter = filter
	report.GeneratedAt = s.now()
	return report, nil
}

func (s *OperationService) listPage(ctx context.Context, userID uuid.UUID, filter OperationFilter) (OperationPage, error) {
	logData := logging.GetLogData(ctx)

	storageFilter := toStorageFilter(userID, filter)
	storageFilter.Limit = filter.Limit
	storageFilter.Offset = (filter.Page - 1) * filter.Limit

	stopTimer := logData.AddTiming("listOperationsMs")
	rows, err := s.storage.Operations.List(ctx, storageFilter)
	stopTimer()
	if err != nil {
		return OperationPage{}, err
	}

	stopTimer = logData.AddTiming("countOperationsMs")
	total, err := s.storage.Operations.Count(ctx, storageFilter)
	stopTimer()
	if err != nil {
		return OperationPage{}, err
	}

	operations := make([]Operation, len(rows))
	for i, row := range rows {
		operations[i] = operationFromRow(row)
	}
	return OperationPage{
		Operations: operations,
		Pagination: newPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *OperationService) statistics(ctx context.Context, userID uuid.UUID, filter OperationFilter) (stats.Summary, error) {
	items, err := s.loadItems(ctx, toStorageFilter(userID, filter))
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(items), nil
}

func (s *OperationService) difference(ctx context.Context, userID uuid.UUID, filter OperationFilter) (stats.Difference, error) {
	filter.Type = nil
	items, err := s.loadItems(ctx, toStorageFilter(userID, filter))
	if err != nil {
		return stats.Difference{}, err
	}
	return stats.Diff(items), nil
}

func (s *OperationService) loadItems(ctx context.Context, filter *sqlconfig.OperationFilter) ([]stats.Item, error) {
	stopTimer := logging.GetLogData(ctx).AddToExistingTiming("loadItemsMs")
	defer stopTimer()

	rows, err := s.storage.Operations.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return statsItemsFromRows(rows), nil
}

// publish reports a committed change. The change already happened, so a
// broker failure is logged rather than returned.
func (s *OperationService) publish(ctx context.Context, kind events.Kind, op Operation) {
	event := events.OperationEvent{
		Kind:        kind,
		OperationID: op.ID,
		UserID:      op.UserID,
		Type:        op.Type,
		FuelType:    op.FuelType,
		Month:       op.Month,
		Year:        op.Year,
		Quantity:    op.Quantity,
		TotalValue:  op.TotalValue,
		OccurredAt:  s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"kind":        kind,
			"operationID": op.ID.String(),
		}).Warn("OperationService.publish")
	}
}

func toStorageFilter(userID uuid.UUID, filter OperationFilter) *sqlconfig.OperationFilter {
	storageFilter := &sqlconfig.OperationFilter{
		UserID: &userID,
		Month:  filter.Month,
		Year:   filter.Year,
	}
	if filter.Type != nil {
		t := string(*filter.Type)
		storageFilter.Type = &t
	}
	if filter.FuelType != nil {
		ft := string(*filter.FuelType)
		storageFilter.FuelType = &ft
	}
	return storageFilter
}
