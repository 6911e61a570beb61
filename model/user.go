// Package model defines the wire types exchanged with the LexLink
// marketplace backend. Field names mirror the backend's JSON exactly;
// the client never reshapes payloads beyond decoding them.
package model

// Role represents a user role on the marketplace.
type Role string

const (
	RoleClient Role = "client" // Books appointments and leaves reviews
	RoleLawyer Role = "lawyer" // Offers consultations, owns a LawyerProfile
	RoleAdmin  Role = "admin"  // Approves lawyers, views analytics
)

// Valid reports whether r is one of the roles the backend issues.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleLawyer, RoleAdmin:
		return true
	}
	return false
}

// User is the marketplace identity record.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// UserUpdate carries a partial update to the current user. Nil fields are
// left untouched by Store.UpdateUser.
type UserUpdate struct {
	Name      *string
	City      *string
	Phone     *string
	AvatarURL *string
}
