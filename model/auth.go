package model

// Credentials is the access/refresh token pair issued by the backend.
// The pair is indivisible: storage implementations persist both tokens or
// neither, never one of the two.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Complete reports whether both tokens are present.
func (c Credentials) Complete() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}

// LoginRequest is the password login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterClientRequest creates a client account.
type RegisterClientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterLawyerRequest creates a lawyer account with its initial
// professional record. The profile starts in LawyerPending until an admin
// approves it.
type RegisterLawyerRequest struct {
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Password        string             `json:"password"`
	Specialization  string             `json:"specialization"`
	ExperienceYears int                `json:"experienceYears"`
	City            string             `json:"city"`
	ConsultationFee float64            `json:"consultationFee"`
	Education       string             `json:"education,omitempty"`
	Description     string             `json:"description,omitempty"`
	ProfilePhotoURL string             `json:"profilePhotoUrl,omitempty"`
	Availability    []AvailabilitySlot `json:"availability"`
}

// AuthResponse is returned by login and both register calls.
type AuthResponse struct {
	User          User           `json:"user"`
	Tokens        Credentials    `json:"tokens"`
	LawyerProfile *LawyerProfile `json:"lawyerProfile,omitempty"`
	ProfileStatus LawyerStatus   `json:"profileStatus,omitempty"`
}

// RefreshRequest exchanges a refresh token for a fresh pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse carries the rotated token pair.
type RefreshResponse struct {
	Tokens Credentials `json:"tokens"`
}

// Profile is the /auth/me payload: the user plus their lawyer profile when
// the role is lawyer.
type Profile struct {
	User
	LawyerProfile *LawyerProfile `json:"lawyerProfile,omitempty"`
}
