// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"
	"slices"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/query"
)

// PageSizes returns the allowed page sizes.
func (u *Usecase) PageSizes() []int {
	return append([]int(nil), u.pageSizes...)
}

// ListUsers filters and paginates a snapshot of the collection. A zero page
// size selects the default; the page is clamped into range.
func (u *Usecase) ListUsers(ctx context.Context, params query.Params) (query.Listing, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	params = params.Normalize()
	if params.PageSize == 0 {
		params.PageSize = u.defaultPageSize
	}
	if !slices.Contains(u.pageSizes, params.PageSize) {
		return query.Listing{}, fmt.Errorf("%w: page_size must be one of %v", entities.ErrInvalidArgument, u.pageSizes)
	}
	if params.Status != query.All && !entities.Status(params.Status).Valid() {
		return query.Listing{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, params.Status)
	}
	if params.Profile != query.All && !entities.Profile(params.Profile).Valid() {
		return query.Listing{}, fmt.Errorf("%w: unknown profile %q", entities.ErrInvalidArgument, params.Profile)
	}

	records, err := u.repo.ListUsers(ctx)
	if err != nil {
		u.log.Errorw("failed to list users", "error", err)
		return query.Listing{}, err
	}

	return query.List(records, params), nil
}

// User returns a single user.
func (u *Usecase) User(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, id)
}

// CreateUser validates the form, assigns an id and creation time and stores the user.
func (u *Usecase) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user = normalizeUser(user)
	if err := validateUser(user); err != nil {
		u.log.Infow("rejected user form", "error", err)
		return nil, err
	}

	user.ID = u.newID()
	user.CreatedAt = u.now()
	return u.repo.CreateUser(ctx, user)
}

// UpdateUser validates the form and replaces the user in place.
func (u *Usecase) UpdateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user = normalizeUser(user)
	if user.ID == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if err := validateUser(user); err != nil {
		u.log.Infow("rejected user form", "error", err, "user_id", user.ID)
		return nil, err
	}
	return u.repo.UpdateUser(ctx, user)
}

// DeleteUser removes a user.
func (u *Usecase) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteUser(ctx, id)
}
