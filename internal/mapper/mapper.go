// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/query"
	"github.com/Yosipmikecolin/app-web-wesense/internal/session"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/dto"
)

// ToDTOUser maps entities.User to transport model.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		ID:        u.ID,
		FullName:  u.FullName,
		NIT:       u.NIT,
		Email:     u.Email,
		Phone:     u.Phone,
		Profile:   string(u.Profile),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

// ToDTOUsers maps a slice of entities.User to transport slice.
func ToDTOUsers(list []entities.User) []dto.User {
	res := make([]dto.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToDTOUser(u))
	}
	return res
}

// FromDTOUserForm builds an entities.User from a form body. id is empty on create.
func FromDTOUserForm(id string, f dto.UserForm) entities.User {
	return entities.User{
		ID:       id,
		FullName: f.Name,
		NIT:      f.NIT,
		Email:    f.Email,
		Phone:    f.Phone,
		Profile:  entities.Profile(f.Profile),
		Status:   entities.Status(f.Status),
	}
}

// FromDTOListParams builds query parameters.
func FromDTOListParams(p dto.ListUsersParams) query.Params {
	return query.Params{
		Search:   p.Search,
		Status:   p.Status,
		Profile:  p.Profile,
		Page:     p.Page,
		PageSize: p.PageSize,
		Reset:    p.Reset,
	}
}

// ToDTOUserList maps a listing to transport model.
func ToDTOUserList(l query.Listing, pageSizes []int) dto.UserList {
	return dto.UserList{
		Users:      ToDTOUsers(l.Page),
		TotalCount: l.TotalCount,
		TotalPages: l.TotalPages,
		Page:       l.Params.Page,
		PageSize:   l.Params.PageSize,
		PageSizes:  pageSizes,
		First:      l.First,
		Last:       l.Last,
		Search:     l.Params.Search,
		Status:     l.Params.Status,
		Profile:    l.Params.Profile,
	}
}

// ToDTOSession maps a session snapshot to transport model.
func ToDTOSession(s session.Snapshot) dto.SessionResponse {
	resp := dto.SessionResponse{
		State:         s.State.String(),
		Authenticated: s.User != nil && !s.Loading,
		Loading:       s.Loading,
	}
	if s.User != nil {
		u := ToDTOUser(*s.User)
		resp.User = &u
	}
	return resp
}
