package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name      string
		fields    UserFields
		wantField string // empty means valid
	}{
		{"valid minimal", UserFields{Name: "A", Email: "a@b.co"}, ""},
		{"valid with age bounds", UserFields{Name: "A", Email: "a@b.co", Age: intPtr(0)}, ""},
		{"valid max age", UserFields{Name: "A", Email: "a@b.co", Age: intPtr(150)}, ""},
		{"missing name", UserFields{Email: "a@b.co"}, "name"},
		{"name too long", UserFields{Name: strings.Repeat("x", 101), Email: "a@b.co"}, "name"},
		{"name at limit", UserFields{Name: strings.Repeat("x", 100), Email: "a@b.co"}, ""},
		{"missing email", UserFields{Name: "A"}, "email"},
		{"email without at", UserFields{Name: "A", Email: "nope"}, "email"},
		{"email without domain dot", UserFields{Name: "A", Email: "a@b"}, "email"},
		{"email with spaces", UserFields{Name: "A", Email: "a b@c.com"}, "email"},
		{"age negative", UserFields{Name: "A", Email: "a@b.co", Age: intPtr(-1)}, "age"},
		{"age too large", UserFields{Name: "A", Email: "a@b.co", Age: intPtr(151)}, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUser(tt.fields)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			v := AsValidation(err)
			if assert.NotNil(t, v) {
				found := false
				for _, f := range v.Fields {
					if f.Field == tt.wantField {
						found = true
					}
				}
				assert.True(t, found, "expected a violation on %q, got %v", tt.wantField, v.Fields)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := validateUser(UserFields{})
	assert.ErrorContains(t, err, "name")
	assert.ErrorContains(t, err, "email")
}
