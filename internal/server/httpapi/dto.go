package httpapi

import (
	"time"

	"github.com/dmitrijs2005/employwise/internal/server/users"
)

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type userDTO struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

type pageResponse struct {
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
	Data       []userDTO `json:"data"`
}

type singleResponse struct {
	Data userDTO `json:"data"`
}

type updateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// updateResponse echoes the accepted fields, reqres style.
type updateResponse struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	UpdatedAt string  `json:"updatedAt"`
}

func toDTO(u users.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Avatar: u.Avatar}
}

func toPage(p *users.PageResult) pageResponse {
	data := make([]userDTO, 0, len(p.Users))
	for _, u := range p.Users {
		data = append(data, toDTO(u))
	}
	return pageResponse{Page: p.Page, PerPage: p.PerPage, Total: p.Total, TotalPages: p.TotalPages, Data: data}
}

func (r updateRequest) patch() users.Patch {
	return users.Patch{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

func confirmation(r updateRequest, at time.Time) updateResponse {
	return updateResponse{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		UpdatedAt: at.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}
