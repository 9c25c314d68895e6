// Package models holds the entities the console reads from the platform API,
// the criteria used to page through them and the partial updates it sends.
// All entities are backend-owned snapshots; nothing here is persisted.
package models

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/qradmin/internal/common"
)

// Entity is anything a list controller can select, edit and delete.
type Entity interface {
	EntityID() string
	DisplayName() string
}

// Patch is a partial update validated on the client before it is sent.
type Patch interface {
	Validate() error
}

// OwnerRef is the owning user of a QR code or landing page. The API sends
// either a bare id or a populated {_id,name,email} object.
type OwnerRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (o *OwnerRef) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		*o = OwnerRef{ID: id}
		return nil
	}
	type plain OwnerRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("owner reference: %w", err)
	}
	*o = OwnerRef(p)
	return nil
}

// Label is the owner's name, or "Unknown" when the reference is not populated.
func (o OwnerRef) Label() string {
	if o.Name == "" {
		return "Unknown"
	}
	return o.Name
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, fmt.Sprintf(format, args...))
}

func requireNonEmpty(field string, v *string) error {
	if v != nil && *v == "" {
		return validationErr("%s is required", field)
	}
	return nil
}
