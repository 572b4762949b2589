package store

import (
	"sync"
	"time"
)

// Account is a directory entry on the inventory service, addressable
// by username or email.
type Account struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountStore keeps directory accounts in registration order. Email
// is the uniqueness field; username is a lookup alias, not a key.
type AccountStore struct {
	mu       sync.Mutex
	accounts []Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

func (s *AccountStore) Register(username, email string) (Account, error) {
	if err := validateAccount(username, email); err != nil {
		return Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Email == email {
			return Account{}, ErrDuplicateKey
		}
	}

	acct := Account{Username: username, Email: email, CreatedAt: time.Now().UTC()}
	s.accounts = append(s.accounts, acct)
	return acct, nil
}

// Lookup matches idOrName against username or email.
func (s *AccountStore) Lookup(idOrName string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Username == idOrName || a.Email == idOrName {
			return a, nil
		}
	}
	return Account{}, ErrNotFound
}

func (s *AccountStore) List() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Remove deletes every account whose username or email matches and
// returns how many were removed. Removing nothing is not an error.
func (s *AccountStore) Remove(idOrName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.accounts[:0]
	removed := 0
	for _, a := range s.accounts {
		if a.Username == idOrName || a.Email == idOrName {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.accounts = kept
	return removed
}

func (s *AccountStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}
