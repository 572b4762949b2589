package store

import "regexp"

// Field constraints shared by the user and directory records.
const (
	nameMinLen = 1
	nameMaxLen = 100
	ageMin     = 0
	ageMax     = 150
)

// local-part "@" domain, with at least one dot in the domain. Kept
// deliberately loose; the store is not an address verifier.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func checkName(v *ValidationError, field, value string) {
	if len(value) < nameMinLen {
		v.add(field, "is required")
		return
	}
	if len(value) > nameMaxLen {
		v.add(field, "must be at most 100 characters")
	}
}

func checkEmail(v *ValidationError, value string) {
	if value == "" {
		v.add("email", "is required")
		return
	}
	if !emailPattern.MatchString(value) {
		v.add("email", "must be a valid email address")
	}
}

// validateUser checks every rule and reports all violations at once.
func validateUser(f UserFields) error {
	var v ValidationError
	checkName(&v, "name", f.Name)
	checkEmail(&v, f.Email)
	if f.Age != nil && (*f.Age < ageMin || *f.Age > ageMax) {
		v.add("age", "must be between 0 and 150")
	}
	return v.orNil()
}

func validateAccount(username, email string) error {
	var v ValidationError
	checkName(&v, "username", username)
	checkEmail(&v, email)
	return v.orNil()
}

func validateItem(item InventoryItem) error {
	var v ValidationError
	checkName(&v, "name", item.Name)
	if item.ReleaseDate.IsZero() {
		v.add("releaseDate", "is required")
	}
	checkName(&v, "manufacturer.name", item.Manufacturer.Name)
	return v.orNil()
}
