package domain

import (
	"context"
	"time"

	"github.com/Yosipmikecolin/app-web-wesense/config"
	"github.com/Yosipmikecolin/app-web-wesense/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx             context.Context
	log             *zap.SugaredLogger
	repo            repository.Repository
	timeout         time.Duration
	pageSizes       []int
	defaultPageSize int
	now             func() time.Time
	newID           func() string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	users config.UsersConfig,
) *Usecase {
	return &Usecase{
		ctx:             ctx,
		log:             log,
		repo:            repo,
		timeout:         timeout,
		pageSizes:       append([]int(nil), users.PageSizes...),
		defaultPageSize: users.DefaultPageSize,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           newUserID,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
