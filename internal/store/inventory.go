package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manufacturer is the nested vendor block on an inventory item.
type Manufacturer struct {
	Name     string `json:"name"`
	HomePage string `json:"homePage,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// InventoryItem is keyed by a UUID. Callers may bring their own ID;
// the store generates one otherwise.
type InventoryItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ReleaseDate  time.Time    `json:"releaseDate"`
	Manufacturer Manufacturer `json:"manufacturer"`
	CreatedAt    time.Time    `json:"created_at"`
}

// InventoryStore holds inventory items in insertion order.
type InventoryStore struct {
	mu    sync.Mutex
	items map[string]*InventoryItem
	order []string
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{items: map[string]*InventoryItem{}}
}

// Add validates the candidate and stores it. A supplied ID must be a
// well-formed UUID and not already live (ErrDuplicateKey); an empty ID
// gets a generated one.
func (s *InventoryStore) Add(item InventoryItem) (InventoryItem, error) {
	if err := validateItem(item); err != nil {
		return InventoryItem{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	} else if _, err := uuid.Parse(item.ID); err != nil {
		v := &ValidationError{}
		v.add("id", "must be a valid UUID")
		return InventoryItem{}, v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ID]; exists {
		return InventoryItem{}, ErrDuplicateKey
	}

	item.CreatedAt = time.Now().UTC()
	stored := item
	s.items[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	return item, nil
}

func (s *InventoryStore) Get(id string) (InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return InventoryItem{}, ErrNotFound
	}
	return *item, nil
}

func (s *InventoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Search scans every live item for a case-insensitive substring match
// on the name, then applies skip/limit to the filtered result. An
// empty query matches everything.
func (s *InventoryStore) Search(query string, skip, limit int) ([]InventoryItem, error) {
	skip, limit, err := clampPage(skip, limit)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []InventoryItem{}
	for _, id := range s.order {
		item := s.items[id]
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, *item)
	}
	return out, nil
}

func (s *InventoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
