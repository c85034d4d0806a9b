package usecase

import (
	"context"
	"time"

	"github.com/Yosipmikecolin/app-web-wesense/config"
	"github.com/Yosipmikecolin/app-web-wesense/internal/repository"
	"github.com/Yosipmikecolin/app-web-wesense/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, users config.UsersConfig) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, users)
}
