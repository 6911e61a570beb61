// Package forms validates user input locally before it reaches the
// network. Validation failures are client-side only: a form that fails
// here never produces an HTTP request.
package forms

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
)

var timeSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// "timeslot" checks 24h HH:MM, the backend's slot format.
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return timeSlotPattern.MatchString(fl.Field().String())
	})

	return v
}

// Login is the password login form.
type Login struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (f Login) Validate() error { return check(validate.Struct(f)) }

// RegisterClient is the client signup form.
type RegisterClient struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	City            string
	Phone           string
}

func (f RegisterClient) Validate() error { return check(validate.Struct(f)) }

// Request converts the validated form into its wire payload.
func (f RegisterClient) Request() model.RegisterClientRequest {
	return model.RegisterClientRequest{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
		City:     f.City,
		Phone:    f.Phone,
	}
}

// AvailabilityEntry is one day of a lawyer's weekly schedule.
type AvailabilityEntry struct {
	Day   string   `validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Slots []string `validate:"required,min=1,dive,timeslot"`
}

// RegisterLawyer is the lawyer signup form.
type RegisterLawyer struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Specialization  string `validate:"required"`
	ExperienceYears int    `validate:"gte=0"`
	City            string `validate:"required"`
	ConsultationFee float64 `validate:"gt=0"`
	Education       string
	Description     string
	ProfilePhotoURL string              `validate:"omitempty,url"`
	Availability    []AvailabilityEntry `validate:"required,min=1,dive"`
}

func (f RegisterLawyer) Validate() error { return check(validate.Struct(f)) }

// Request converts the validated form into its wire payload.
func (f RegisterLawyer) Request() model.RegisterLawyerRequest {
	availability := make([]model.AvailabilitySlot, 0, len(f.Availability))
	for _, entry := range f.Availability {
		availability = append(availability, model.AvailabilitySlot{Day: entry.Day, Slots: entry.Slots})
	}
	return model.RegisterLawyerRequest{
		Name:            f.Name,
		Email:           f.Email,
		Password:        f.Password,
		Specialization:  f.Specialization,
		ExperienceYears: f.ExperienceYears,
		City:            f.City,
		ConsultationFee: f.ConsultationFee,
		Education:       f.Education,
		Description:     f.Description,
		ProfilePhotoURL: f.ProfilePhotoURL,
		Availability:    availability,
	}
}

// Review is the rating form for a lawyer.
type Review struct {
	Rating  int    `validate:"required,min=1,max=5"`
	Comment string `validate:"max=1000"`
}

func (f Review) Validate() error { return check(validate.Struct(f)) }

// NewBooking is the slot booking form.
type NewBooking struct {
	LawyerID string `validate:"required"`
	SlotDate string `validate:"required,datetime=2006-01-02"`
	SlotTime string `validate:"required,timeslot"`
	Reason   string
	Notes    string
}

func (f NewBooking) Validate() error { return check(validate.Struct(f)) }

// Request converts the validated form into its wire payload.
func (f NewBooking) Request() model.CreateBookingRequest {
	return model.CreateBookingRequest{
		LawyerID: f.LawyerID,
		SlotDate: f.SlotDate,
		SlotTime: f.SlotTime,
		Reason:   f.Reason,
		Notes:    f.Notes,
	}
}

// check translates validator output into a single readable error wrapping
// ErrValidation.
func check(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrapf(err, "%s", errors.ErrValidation.Error())
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, messageFor(fe))
	}
	return fmt.Errorf("%w: %s", errors.ErrValidation, strings.Join(messages, "; "))
}

func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "timeslot":
		return field + " must be a time slot in HH:MM format"
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "url":
		return field + " must be a valid URL"
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}
