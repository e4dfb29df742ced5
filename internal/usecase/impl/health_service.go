package impl

import (
	"context"

	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/pkg/errors"
)

type healthService struct {
	checker repository.HealthChecker
}

// NewHealthService is the constructor for healthService.
func NewHealthService(checker repository.HealthChecker) usecase.HealthUsecase {
	return &healthService{checker: checker}
}

func (srv *healthService) Check(ctx context.Context) error {
	return errors.Wrap(srv.checker.Ping(ctx), "database unreachable")
}
