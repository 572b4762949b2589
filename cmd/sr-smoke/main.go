// sr-smoke drives the user API's CRUD contract end to end against a
// running sr-users server and exits non-zero on the first violation.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"stockroom/internal/store"
)

type client struct {
	base string
	http *http.Client
}

func (c *client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	url := strings.TrimRight(c.base, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	return resp.StatusCode, b, err
}

type step struct {
	name       string
	method     string
	path       string
	body       any
	wantStatus int
	check      func(body []byte) error
}

func main() {
	serverURL := flag.String("server", "http://localhost:8086", "base URL of a running sr-users server")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	c := &client{base: *serverURL, http: &http.Client{Timeout: *timeout}}
	ctx := context.Background()

	age := 30
	john := store.UserFields{Name: "John Doe", Email: "john@x.com", Age: &age}
	johnUpdated := store.UserFields{Name: "John Q. Doe", Email: "john@x.com", Age: &age}

	var createdID int64

	steps := []step{
		{name: "health", method: "GET", path: "/health", wantStatus: 200,
			check: func(b []byte) error {
				var h struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(b, &h); err != nil {
					return err
				}
				if h.Status != "healthy" {
					return fmt.Errorf("status = %q", h.Status)
				}
				return nil
			}},
		{name: "create user", method: "POST", path: "/users", body: john, wantStatus: 201,
			check: func(b []byte) error {
				var u store.User
				if err := json.Unmarshal(b, &u); err != nil {
					return err
				}
				if u.ID == 0 {
					return fmt.Errorf("no id assigned")
				}
				if !u.IsActive {
					return fmt.Errorf("is_active should default to true")
				}
				createdID = u.ID
				return nil
			}},
		{name: "duplicate email rejected", method: "POST", path: "/users",
			body: store.UserFields{Name: "Imposter", Email: "john@x.com"}, wantStatus: 400},
		{name: "get user", method: "GET", path: "", wantStatus: 200,
			check: func(b []byte) error {
				var u store.User
				if err := json.Unmarshal(b, &u); err != nil {
					return err
				}
				if u.Email != "john@x.com" {
					return fmt.Errorf("email = %q", u.Email)
				}
				return nil
			}},
		{name: "list users", method: "GET", path: "/users?skip=0&limit=10", wantStatus: 200},
		{name: "update user", method: "PUT", path: "", body: johnUpdated, wantStatus: 200},
		{name: "delete user", method: "DELETE", path: "", wantStatus: 204},
		{name: "get after delete", method: "GET", path: "", wantStatus: 404},
		{name: "analytics empty", method: "GET", path: "/analytics", wantStatus: 200,
			check: func(b []byte) error {
				var a struct {
					Total int `json:"total_users"`
				}
				if err := json.Unmarshal(b, &a); err != nil {
					return err
				}
				if a.Total != 0 {
					return fmt.Errorf("total_users = %d, want 0", a.Total)
				}
				return nil
			}},
	}

	failed := false
	for _, s := range steps {
		path := s.path
		if path == "" {
			path = fmt.Sprintf("/users/%d", createdID)
		}
		status, body, err := c.do(ctx, s.method, path, s.body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %-24s %v\n", s.name, err)
			failed = true
			break
		}
		if status != s.wantStatus {
			fmt.Fprintf(os.Stderr, "FAIL %-24s status %d, want %d: %s\n", s.name, status, s.wantStatus, body)
			failed = true
			continue
		}
		if s.check != nil {
			if err := s.check(body); err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %-24s %v\n", s.name, err)
				failed = true
				continue
			}
		}
		fmt.Printf("ok   %s\n", s.name)
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("smoke passed")
}
