package fortune

import (
	"context"

	"teapot-fortune/feature/fortune/models"

	"go.uber.org/zap"
)

// Service handles fortune selection for both the HTTP handler and the CLI.
type Service struct {
	selector *Selector
	logger   *zap.Logger
}

// NewService creates a new fortune service.
func NewService(repo Repository, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		selector: NewSelector(repo, cfg.MaxAttempts),
		logger:   logger,
	}
}

// NewServiceWithSelector creates a service around an existing selector.
func NewServiceWithSelector(selector *Selector, logger *zap.Logger) *Service {
	return &Service{selector: selector, logger: logger}
}

// Fortune returns one random entry.
func (s *Service) Fortune(ctx context.Context) (*models.Entry, error) {
	entry, err := s.selector.Select(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Fortune selected", zap.Int64("id", entry.ID))
	return entry, nil
}
