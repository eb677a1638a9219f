package conversation

import (
	"fmt"

	"recycling/internal/pkg/errs"
)

// Role identifies who authored a chat message or ended a conversation.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser is the user who submitted the appointment.
	RoleUser

	// RoleRecycler is the recycler assigned to the appointment.
	RoleRecycler

	// RoleSystem is used for workflow-generated messages, e.g. the
	// acceptance notice or a rollback rationale.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleUser:     "user",
		RoleRecycler: "recycler",
		RoleSystem:   "system",
	}
}

// Validate checks if the Role is one of the defined roles.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleRecycler && r != RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsParticipant reports whether the role is one of the two conversation
// sides that can end it. System messages never end a conversation.
func (r Role) IsParticipant() bool {
	return r == RoleUser || r == RoleRecycler
}

// String returns the wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
