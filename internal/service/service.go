package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/events"
	"github.com/carson-networks/fuel-server/internal/operator/actions"
	"github.com/carson-networks/fuel-server/internal/storage"
)

// ActionProcessor runs a write action inside a single transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Operation *OperationService
	Rate      *RateService
	User      *UserService
}

// NewService creates a new Service with the given storage, rate table and write queue.
func NewService(
	store *storage.Storage,
	rates *RateService,
	processor ActionProcessor,
	publisher events.Publisher,
	tokens *auth.Tokens,
	logger *logrus.Logger,
) *Service {
	return &Service{
		Operation: NewOperationService(store, rates.Resolver(), processor, publisher, logger),
		Rate:      rates,
		User:      NewUserService(store, processor, tokens),
	}
}
