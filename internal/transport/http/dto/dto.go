// Package dto holds the JSON shapes of the HTTP API.
package dto

import "time"

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	NOTFOUND        ErrorCode = "NOT_FOUND"
	USEREXISTS      ErrorCode = "USER_EXISTS"
	LOGINFAILED     ErrorCode = "LOGIN_FAILED"
	LOGININPROGRESS ErrorCode = "LOGIN_IN_PROGRESS"
	NOTIMPLEMENTED  ErrorCode = "NOT_IMPLEMENTED"
	INTERNAL        ErrorCode = "INTERNAL"
)

// ErrorBody is the payload of ErrorResponse.
type ErrorBody struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse wraps every error answer.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// User is the transport view of a user record.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	NIT       string    `json:"nit"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Profile   string    `json:"profile"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserForm is the create/edit request body.
type UserForm struct {
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Profile string `json:"profile"`
	Status  string `json:"status"`
}

// ListUsersParams are the query parameters of GET /users.
type ListUsersParams struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Profile  string `query:"profile"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	Reset    bool   `query:"reset"`
}

// UserList is the answer of GET /users.
type UserList struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	PageSizes  []int  `json:"page_sizes"`
	First      int    `json:"first"`
	Last       int    `json:"last"`
	Search     string `json:"search"`
	Status     string `json:"status"`
	Profile    string `json:"profile"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials are the demo credentials shown on the login page.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describes the session of the calling browser context.
type SessionResponse struct {
	State         string       `json:"state"`
	Authenticated bool         `json:"authenticated"`
	Loading       bool         `json:"loading"`
	User          *User        `json:"user,omitempty"`
	Demo          *Credentials `json:"demo,omitempty"`
}
