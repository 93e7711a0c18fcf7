package service

import (
	"context"
	"errors"

	"github.com/you/shoe-resale/internal/domain"
)

// In-memory stores for exercising the services without Postgres. Each fake
// mirrors the matching repository's contract, including idempotent deletes
// and the payments unique-shoe guard.

var errStoreDown = errors.New("store down")

type memUsers struct {
	rows map[string]*domain.User // by id
}

func newMemUsers() *memUsers { return &memUsers{rows: map[string]*domain.User{}} }

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = domain.NewID()
	}
	for _, r := range m.rows {
		if r.Email == u.Email {
			return errors.New("duplicate email")
		}
	}
	cp := *u
	m.rows[u.ID] = &cp
	return nil
}

func (m *memUsers) ByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, r := range m.rows {
		if r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) ByID(_ context.Context, id string) (*domain.User, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memUsers) PromoteAdmin(_ context.Context, id string) error {
	r, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Role = domain.RoleAdmin
	return nil
}

func (m *memUsers) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

type memShoes struct {
	rows map[string]*domain.Shoe
}

func newMemShoes() *memShoes { return &memShoes{rows: map[string]*domain.Shoe{}} }

func (m *memShoes) Create(_ context.Context, s *domain.Shoe) error {
	if s.ID == "" {
		s.ID = domain.NewID()
	}
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memShoes) ByID(_ context.Context, id string) (*domain.Shoe, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memShoes) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

type memAdverts struct {
	rows map[string]*domain.Advertisement // by shoe id
}

func newMemAdverts() *memAdverts { return &memAdverts{rows: map[string]*domain.Advertisement{}} }

func (m *memAdverts) Create(_ context.Context, a *domain.Advertisement) (bool, error) {
	if a.ID == "" {
		a.ID = domain.NewID()
	}
	if _, ok := m.rows[a.ShoeID]; ok {
		return false, nil
	}
	cp := *a
	m.rows[a.ShoeID] = &cp
	return true, nil
}

func (m *memAdverts) ExistsByShoeID(_ context.Context, shoeID string) (bool, error) {
	_, ok := m.rows[shoeID]
	return ok, nil
}

func (m *memAdverts) DeleteByShoeID(_ context.Context, shoeID string) (int64, error) {
	if _, ok := m.rows[shoeID]; !ok {
		return 0, nil
	}
	delete(m.rows, shoeID)
	return 1, nil
}

type memBookings struct {
	rows map[string]*domain.Booking
}

func newMemBookings() *memBookings { return &memBookings{rows: map[string]*domain.Booking{}} }

func (m *memBookings) Create(_ context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = domain.NewID()
	}
	cp := *b
	m.rows[b.ID] = &cp
	return nil
}

func (m *memBookings) ByID(_ context.Context, id string) (*domain.Booking, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memBookings) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

func (m *memBookings) DeleteByShoeID(_ context.Context, shoeID string) (int64, error) {
	var n int64
	for id, b := range m.rows {
		if b.ShoeID == shoeID {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

type memPayments struct {
	rows     map[string]*domain.Payment // by shoe id
	failNext bool
}

func newMemPayments() *memPayments { return &memPayments{rows: map[string]*domain.Payment{}} }

func (m *memPayments) InsertIfAbsent(_ context.Context, p *domain.Payment) (bool, error) {
	if m.failNext {
		m.failNext = false
		return false, errStoreDown
	}
	if p.ID == "" {
		p.ID = domain.NewID()
	}
	if _, ok := m.rows[p.ShoeID]; ok {
		return false, nil
	}
	cp := *p
	m.rows[p.ShoeID] = &cp
	return true, nil
}

type memPublisher struct {
	keys []string
}

func (m *memPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	m.keys = append(m.keys, key)
	return nil
}
