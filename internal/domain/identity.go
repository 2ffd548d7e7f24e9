package domain

// Role distinguishes organizers from attendees.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleAttendee  Role = "attendee"
)

// Identity is a user record from the fixed seed list. There is no
// registration flow; identities are immutable once loaded.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (i Identity) IsOrganizer() bool {
	return i.Role == RoleOrganizer
}
