package store

import (
	"sync"
	"time"
)

// MemoryUserStore keeps users in a map plus an insertion-order slice.
// Email uniqueness is a linear scan; fine at this scale, and the
// SQLiteUserStore covers the indexed variant.
type MemoryUserStore struct {
	mu     sync.Mutex
	users  map[int64]*User
	order  []int64
	nextID int64
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users:  map[int64]*User{},
		nextID: 1,
	}
}

// emailTaken reports whether email belongs to a live record other than
// self. Caller must hold mu.
func (s *MemoryUserStore) emailTaken(email string, self int64) bool {
	for _, u := range s.users {
		if u.ID != self && u.Email == email {
			return true
		}
	}
	return false
}

func cloneUser(u *User) User {
	out := *u
	if u.Age != nil {
		age := *u.Age
		out.Age = &age
	}
	return out
}

func (s *MemoryUserStore) Create(fields UserFields) (User, error) {
	if err := validateUser(fields); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(fields.Email, 0) {
		return User{}, ErrDuplicateKey
	}

	u := applyFields(fields)
	u.ID = s.nextID
	u.CreatedAt = time.Now().UTC()
	s.nextID++

	s.users[u.ID] = &u
	s.order = append(s.order, u.ID)
	return cloneUser(&u), nil
}

func (s *MemoryUserStore) Get(id int64) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *MemoryUserStore) List(skip, limit int) ([]User, error) {
	skip, limit, err := clampPage(skip, limit)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []User{}
	for _, id := range s.order {
		if skip > 0 {
			skip--
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, cloneUser(s.users[id]))
	}
	return out, nil
}

func (s *MemoryUserStore) Update(id int64, fields UserFields) (User, error) {
	if err := validateUser(fields); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if s.emailTaken(fields.Email, id) {
		return User{}, ErrDuplicateKey
	}

	u := applyFields(fields)
	u.ID = cur.ID
	u.CreatedAt = cur.CreatedAt
	s.users[id] = &u
	return cloneUser(&u), nil
}

func (s *MemoryUserStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryUserStore) Analytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Analytics{Total: len(s.users)}
	for _, u := range s.users {
		if u.IsActive {
			a.Active++
		}
	}
	a.Inactive = a.Total - a.Active
	return a
}
