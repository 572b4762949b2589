package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// OpenMemoryDB opens a process-local in-memory SQLite database. The
// pool is pinned to one connection: a second pooled connection would
// see a different, empty in-memory database.
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		return nil, err
	}
	return db, nil
}

// SQLiteUserStore implements UserStore over an in-memory SQLite table.
// The unique index on email is the indexed-lookup variant of the
// uniqueness check the memory store does with a linear scan; the data
// is still gone at process exit.
type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(db *sql.DB) (*SQLiteUserStore, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		age INTEGER,
		is_active INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);`)
	if err != nil {
		return nil, err
	}
	return &SQLiteUserStore{db: db}, nil
}

// isUniqueViolation maps the driver's unique-constraint failure onto
// the store taxonomy.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var (
		u        User
		age      sql.NullInt64
		active   int
		createdA int64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &age, &active, &createdA); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if age.Valid {
		a := int(age.Int64)
		u.Age = &a
	}
	u.IsActive = active != 0
	u.CreatedAt = time.Unix(0, createdA).UTC()
	return u, nil
}

func nullableAge(u User) any {
	if u.Age == nil {
		return nil
	}
	return *u.Age
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *SQLiteUserStore) Create(fields UserFields) (User, error) {
	if err := validateUser(fields); err != nil {
		return User{}, err
	}

	u := applyFields(fields)
	u.CreatedAt = time.Now().UTC()

	res, err := s.db.Exec(
		`INSERT INTO users (name, email, age, is_active, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.Name, u.Email, nullableAge(u), boolToInt(u.IsActive), u.CreatedAt.UnixNano(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrDuplicateKey
		}
		return User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

func (s *SQLiteUserStore) Get(id int64) (User, error) {
	row := s.db.QueryRow(
		`SELECT id, name, email, age, is_active, created_at FROM users WHERE id = ?`, id,
	)
	return scanUser(row)
}

func (s *SQLiteUserStore) List(skip, limit int) ([]User, error) {
	skip, limit, err := clampPage(skip, limit)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, name, email, age, is_active, created_at
		 FROM users ORDER BY id LIMIT ? OFFSET ?`, limit, skip,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *SQLiteUserStore) Update(id int64, fields UserFields) (User, error) {
	if err := validateUser(fields); err != nil {
		return User{}, err
	}

	cur, err := s.Get(id)
	if err != nil {
		return User{}, err
	}

	u := applyFields(fields)
	u.ID = cur.ID
	u.CreatedAt = cur.CreatedAt

	_, err = s.db.Exec(
		`UPDATE users SET name=?, email=?, age=?, is_active=? WHERE id=?`,
		u.Name, u.Email, nullableAge(u), boolToInt(u.IsActive), id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrDuplicateKey
		}
		return User{}, err
	}
	return u, nil
}

func (s *SQLiteUserStore) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteUserStore) Analytics() Analytics {
	var a Analytics
	_ = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(is_active), 0) FROM users`,
	).Scan(&a.Total, &a.Active)
	a.Inactive = a.Total - a.Active
	return a
}
