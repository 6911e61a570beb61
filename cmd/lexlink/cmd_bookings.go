package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexlink/lexlink-cli/forms"
	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
)

func bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Book and manage consultations",
	}
	cmd.AddCommand(
		bookingsCreateCmd(),
		bookingsListCmd(),
		bookingsStatusCmd(),
		bookingsCancelCmd(),
	)
	return cmd
}

func bookingsCreateCmd() *cobra.Command {
	var form forms.NewBooking

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a consultation slot with a lawyer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleClient); err != nil {
				return err
			}
			if err := form.Validate(); err != nil {
				return err
			}

			booking, err := a.client.CreateBooking(cmd.Context(), form.Request())
			if err != nil {
				return err
			}

			fmt.Printf("%s Booked %s %s, status %s\n",
				okStyle.Render("✓"), booking.SlotDate, booking.SlotTime, statusText(string(booking.Status)))
			printKV("Booking ID", booking.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.LawyerID, "lawyer", "", "lawyer ID")
	cmd.Flags().StringVar(&form.SlotDate, "date", "", "slot date as YYYY-MM-DD")
	cmd.Flags().StringVar(&form.SlotTime, "time", "", "slot time as HH:MM")
	cmd.Flags().StringVar(&form.Reason, "reason", "", "reason for the consultation")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "extra notes for the lawyer")
	return cmd
}

func bookingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			user, err := a.requireAuth()
			if err != nil {
				return err
			}

			var bookings []model.Booking
			switch user.Role {
			case model.RoleLawyer:
				bookings, err = a.client.GetLawyerBookings(cmd.Context())
			default:
				bookings, err = a.client.GetClientBookings(cmd.Context())
			}
			if err != nil {
				return err
			}

			printTitle("Bookings")
			printBookings(bookings)
			return nil
		},
	}
}

func bookingsStatusCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "status <booking-id> <pending|confirmed|completed|cancelled>",
		Short: "Move a booking to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleLawyer); err != nil {
				return err
			}

			status := model.BookingStatus(args[1])
			if !status.Valid() {
				return errors.Wrapf(errors.ErrValidation, "unknown status %q", args[1])
			}

			booking, err := a.client.UpdateBookingStatus(cmd.Context(), args[0], model.UpdateBookingStatusRequest{
				Status: status,
				Notes:  notes,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Booking %s is now %s\n", okStyle.Render("✓"), booking.ID, statusText(string(booking.Status)))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "note attached to the status change")
	return cmd
}

func bookingsCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireAuth(); err != nil {
				return err
			}

			booking, err := a.client.CancelBooking(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s Booking %s cancelled\n", okStyle.Render("✓"), booking.ID)
			return nil
		},
	}
}
