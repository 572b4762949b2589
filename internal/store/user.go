package store

import "time"

// User is a stored user record. ID and CreatedAt are assigned by the
// store at insert time and never change afterwards.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFields is a candidate for a user create or update. IsActive is a
// pointer so an absent field can be told apart from an explicit false;
// absent defaults to active.
type UserFields struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      *int   `json:"age"`
	IsActive *bool  `json:"is_active"`
}

// Analytics is a point-in-time count over the full store snapshot.
type Analytics struct {
	Total    int `json:"total_users"`
	Active   int `json:"active_users"`
	Inactive int `json:"inactive_users"`
}

// MaxListLimit caps a single List page.
const MaxListLimit = 1000

// UserStore is the call contract between the user service transport and
// the record collection. Implementations must serialize mutations so
// the email uniqueness check and the write it guards are atomic.
type UserStore interface {
	// Create validates fields, rejects a duplicate email with
	// ErrDuplicateKey, assigns the next ID (starting at 1, never
	// reused) and stamps CreatedAt.
	Create(fields UserFields) (User, error)

	// Get returns ErrNotFound when no live record has that ID.
	Get(id int64) (User, error)

	// List returns records in insertion order, skipping the first
	// skip and returning at most limit. A limit past the remainder
	// returns whatever remains.
	List(skip, limit int) ([]User, error)

	// Update re-validates fields and replaces the record in place,
	// preserving ID and CreatedAt. Changing the email to a value held
	// by a different live record fails with ErrDuplicateKey; keeping
	// its own email succeeds.
	Update(id int64, fields UserFields) (User, error)

	// Delete removes the record permanently. Its ID is never
	// reassigned.
	Delete(id int64) error

	// Analytics recounts the current snapshot on every call.
	Analytics() Analytics
}

// applyFields builds the stored representation of a candidate,
// resolving the is_active default.
func applyFields(f UserFields) User {
	u := User{
		Name:     f.Name,
		Email:    f.Email,
		IsActive: true,
	}
	if f.Age != nil {
		age := *f.Age
		u.Age = &age
	}
	if f.IsActive != nil {
		u.IsActive = *f.IsActive
	}
	return u
}

// clampPage normalizes pagination bounds shared by both UserStore
// implementations. Negative skip and non-positive limit are caller
// errors; an oversized limit is clamped.
func clampPage(skip, limit int) (int, int, error) {
	var v ValidationError
	if skip < 0 {
		v.add("skip", "must be >= 0")
	}
	if limit < 1 {
		v.add("limit", "must be >= 1")
	}
	if err := v.orNil(); err != nil {
		return 0, 0, err
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return skip, limit, nil
}
