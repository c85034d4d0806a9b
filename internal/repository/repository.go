// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/Yosipmikecolin/app-web-wesense/config"
	"github.com/Yosipmikecolin/app-web-wesense/internal/repository/memory"
	"github.com/Yosipmikecolin/app-web-wesense/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	KVInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(log, cfg.Users.Seed), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
