package domain

import (
	"strings"

	dErrors "safesignal/pkg/domain-errors"
)

// Contact is an emergency contact. Server-side contacts carry a store-assigned
// id; client roster contacts are identified by position and marshal without one.
type Contact struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation,omitempty"`
}

// Validate enforces the creation invariant: name and phone must be non-empty
// after trimming.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Phone) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "name and phone are required")
	}
	return nil
}
