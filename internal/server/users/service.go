package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/dmitrijs2005/employwise/internal/server/auth"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingEmail    = errors.New("missing email or username")
	ErrMissingPassword = errors.New("missing password")
	ErrEmptyPatch      = errors.New("nothing to update")
)

// MaxPerPage bounds the page size a caller may ask for.
const MaxPerPage = 100

type PageResult struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	Users      []User
}

type Service struct {
	repo           Repository
	jwtSecret      []byte
	tokenValidity  time.Duration
	defaultPerPage int
	bcryptCost     int
}

func NewService(repo Repository, secretKey string, tokenValidity time.Duration, perPage int) *Service {
	if perPage < 1 {
		perPage = 6
	}
	return &Service{
		repo:           repo,
		jwtSecret:      []byte(secretKey),
		tokenValidity:  tokenValidity,
		defaultPerPage: perPage,
		bcryptCost:     bcrypt.DefaultCost,
	}
}

// Login checks the password against the stored bcrypt hash and issues a
// bearer token. Unknown users and wrong passwords both yield
// common.ErrorInvalidLoginPassword.
func (s *Service) Login(ctx context.Context, email string, password []byte) (string, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrMissingEmail
	}
	if len(password) == 0 {
		return "", ErrMissingPassword
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidLoginPassword
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, password); err != nil {
		return "", common.ErrorInvalidLoginPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authenticate resolves a bearer token to the id of an existing user.
func (s *Service) Authenticate(ctx context.Context, token string) (int, error) {
	id, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return 0, common.ErrorUnauthorized
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return 0, common.ErrorUnauthorized
	}
	return id, nil
}

// List returns one page of the directory. Page numbers below 1 are treated
// as 1 and page sizes are capped at MaxPerPage; a page past the end yields
// an empty result with correct totals.
func (s *Service) List(ctx context.Context, page, perPage int) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.defaultPerPage
	}
	perPage = min(perPage, MaxPerPage)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	result := &PageResult{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
		Users:      []User{},
	}

	// beyond the last page there is nothing to fetch, and the offset of a
	// huge page number would overflow
	if page > result.TotalPages {
		return result, nil
	}

	items, err := s.repo.List(ctx, (page-1)*perPage, perPage)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	result.Users = items

	return result, nil
}

func (s *Service) Get(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*User, error) {
	if patch.FirstName == nil && patch.LastName == nil && patch.Email == nil {
		return nil, ErrEmptyPatch
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

type seedUser struct {
	first, last string
}

var demoUsers = []seedUser{
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// EnsureSeed fills an empty directory with the twelve demo users, all
// sharing password. A non-empty directory is left alone.
func (s *Service) EnsureSeed(ctx context.Context, password string) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	for i, d := range demoUsers {
		id := i + 1
		_, err := s.repo.Create(ctx, &User{
			ID:           id,
			Email:        strings.ToLower(d.first + "." + d.last + "@reqres.in"),
			FirstName:    d.first,
			LastName:     d.last,
			Avatar:       AvatarURL(id),
			PasswordHash: hash,
		})
		if err != nil {
			return i, fmt.Errorf("seed user %d: %w", id, err)
		}
	}
	return len(demoUsers), nil
}
