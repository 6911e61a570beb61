package model

// BookingStatus is the lifecycle state of an appointment.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a status the backend accepts.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is an appointment between a client and a lawyer.
type Booking struct {
	ID        string        `json:"_id"`
	ClientID  string        `json:"client"`
	LawyerID  string        `json:"lawyer"`
	SlotDate  string        `json:"slotDate"` // YYYY-MM-DD
	SlotTime  string        `json:"slotTime"` // HH:MM
	Status    BookingStatus `json:"status"`
	Reason    string        `json:"reason,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt string        `json:"createdAt,omitempty"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
}

// CreateBookingRequest is the payload for booking a slot.
type CreateBookingRequest struct {
	LawyerID string `json:"lawyerId"`
	SlotDate string `json:"slotDate"`
	SlotTime string `json:"slotTime"`
	Reason   string `json:"reason,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateBookingStatusRequest moves a booking to a new status, with an
// optional note from the lawyer.
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status"`
	Notes  string        `json:"notes,omitempty"`
}

// BookingAnalytics is the admin analytics payload.
type BookingAnalytics struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Today     int `json:"today"`
}
