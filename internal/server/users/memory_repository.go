package users

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/employwise/internal/common"
)

// MemoryRepository keeps users in a map ordered by id. It is the default
// store of the development server when no DSN is configured.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	users  map[int]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, users: make(map[int]User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, 0) {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	if u.ID == 0 {
		u.ID = r.nextID
	} else if _, ok := r.users[u.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now

	r.users[u.ID] = u
	return &u, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) List(ctx context.Context, offset, limit int) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	if offset < 0 || limit < 1 || offset >= len(ids) {
		return []User{}, nil
	}

	out := make([]User, 0, min(limit, len(ids)-offset))
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, r.users[ids[i]])
	}
	return out, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int, patch Patch) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Email != nil && r.emailTaken(*patch.Email, id) {
		return nil, common.ErrorAlreadyExists
	}

	patch.apply(&u)
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return &u, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, id)
	return nil
}

// emailTaken expects r.mu to be held.
func (r *MemoryRepository) emailTaken(email string, exceptID int) bool {
	for id, u := range r.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
