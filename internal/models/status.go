package models

import "fmt"

// Status is the lifecycle state shared by revisions and notifications.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusDone
}

// ParseStatus accepts "pending" or "done".
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", &ValidationError{Field: "status", Message: fmt.Sprintf("invalid status %q", v)}
	}
	return s, nil
}
