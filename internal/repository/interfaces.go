// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes the user collection. ListUsers returns records in
// insertion order.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// KVInterface is the key-value storage backing browser sessions.
// GetValue returns entities.ErrKeyNotFound for missing keys.
type KVInterface interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}
