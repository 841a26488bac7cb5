package users

import (
	"fmt"
	"time"
)

type User struct {
	ID           int
	Email        string
	FirstName    string
	LastName     string
	Avatar       string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (p Patch) apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}

// AvatarURL is the reqres-style avatar location for id.
func AvatarURL(id int) string {
	return fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id)
}
