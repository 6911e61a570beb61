package model

// LawyerStatus is the admin approval state of a lawyer profile.
type LawyerStatus string

const (
	LawyerPending  LawyerStatus = "pending"
	LawyerApproved LawyerStatus = "approved"
	LawyerRejected LawyerStatus = "rejected"
)

// AvailabilitySlot is one day's bookable time slots, e.g.
// {day: "monday", slots: ["09:00", "10:00"]}.
type AvailabilitySlot struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// Review is a client review attached to a lawyer profile.
type Review struct {
	ID        string `json:"_id,omitempty"`
	ClientID  string `json:"client,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// LawyerProfile extends a lawyer user with their professional record.
// The backend owns this data; the client only holds a cache copy.
type LawyerProfile struct {
	ID              string             `json:"_id"`
	User            User               `json:"user"`
	Specialization  string             `json:"specialization"`
	ExperienceYears int                `json:"experienceYears"`
	City            string             `json:"city"`
	ConsultationFee float64            `json:"consultationFee"`
	Availability    []AvailabilitySlot `json:"availability"`
	Education       string             `json:"education,omitempty"`
	Description     string             `json:"description,omitempty"`
	Status          LawyerStatus       `json:"status"`
	RatingAverage   float64            `json:"ratingAverage"`
	RatingCount     int                `json:"ratingCount"`
	Reviews         []Review           `json:"reviews,omitempty"`
	ProfilePhotoURL string             `json:"profilePhotoUrl,omitempty"`
	CreatedAt       string             `json:"createdAt,omitempty"`
	UpdatedAt       string             `json:"updatedAt,omitempty"`
}

// LawyerProfileUpdate carries a partial profile edit. Only non-nil fields
// are sent, so the backend merges instead of overwriting.
type LawyerProfileUpdate struct {
	Specialization  *string  `json:"specialization,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty"`
	City            *string  `json:"city,omitempty"`
	ConsultationFee *float64 `json:"consultationFee,omitempty"`
	Education       *string  `json:"education,omitempty"`
	Description     *string  `json:"description,omitempty"`
	ProfilePhotoURL *string  `json:"profilePhotoUrl,omitempty"`
}

// Specialization is one entry of the searchable specializations list.
type Specialization struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// LawyerDashboard is the lawyer's own dashboard payload.
type LawyerDashboard struct {
	Profile LawyerProfile `json:"profile"`
	Stats   struct {
		Pending   int `json:"pending"`
		Upcoming  int `json:"upcoming"`
		Completed int `json:"completed"`
	} `json:"stats"`
	Pending  []Booking `json:"pending"`
	Upcoming []Booking `json:"upcoming"`
}

// AdminOverview lists profiles awaiting approval plus headline metrics.
type AdminOverview struct {
	Pending []LawyerProfile `json:"pending"`
	Metrics struct {
		Total    int `json:"total"`
		Approved int `json:"approved"`
		Pending  int `json:"pending"`
	} `json:"metrics"`
}
