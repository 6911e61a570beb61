package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexlink/lexlink-cli/forms"
	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/internal/utils"
	"github.com/lexlink/lexlink-cli/model"
)

func lawyersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lawyers",
		Short: "Browse and manage lawyer profiles",
	}
	cmd.AddCommand(
		lawyersSearchCmd(),
		lawyersShowCmd(),
		lawyersSpecializationsCmd(),
		lawyersReviewCmd(),
		lawyersProfileCmd(),
		lawyersAvailabilityCmd(),
		lawyersDashboardCmd(),
	)
	return cmd
}

func lawyersSearchCmd() *cobra.Command {
	var (
		page, limit, minExperience int
		specialization, city       string
		minFee, maxFee, minRating  float64
		availability               string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the directory of approved lawyers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			params := model.SearchLawyersParams{}
			flags := cmd.Flags()
			if flags.Changed("page") {
				params.Page = utils.Ptr(page)
			}
			if flags.Changed("limit") {
				params.Limit = utils.Ptr(limit)
			}
			if flags.Changed("specialization") {
				params.Specialization = utils.Ptr(specialization)
			}
			if flags.Changed("city") {
				params.City = utils.Ptr(city)
			}
			if flags.Changed("min-fee") {
				params.MinFee = utils.Ptr(minFee)
			}
			if flags.Changed("max-fee") {
				params.MaxFee = utils.Ptr(maxFee)
			}
			if flags.Changed("min-experience") {
				params.MinExperience = utils.Ptr(minExperience)
			}
			if flags.Changed("min-rating") {
				params.MinRating = utils.Ptr(minRating)
			}
			if flags.Changed("available") {
				params.Availability = utils.Ptr(availability)
			}

			result, err := a.client.SearchLawyers(cmd.Context(), params)
			if err != nil {
				return err
			}

			printTitle(fmt.Sprintf("Lawyers (page %d, %d total)", result.Meta.Page, result.Meta.Total))
			if len(result.Data) == 0 {
				fmt.Println(faintStyle.Render("  no matches"))
				return nil
			}
			for _, lawyer := range result.Data {
				printLawyerSummary(lawyer)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "result page")
	cmd.Flags().IntVar(&limit, "limit", 10, "results per page")
	cmd.Flags().StringVar(&specialization, "specialization", "", "filter by practice area")
	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().Float64Var(&minFee, "min-fee", 0, "minimum consultation fee")
	cmd.Flags().Float64Var(&maxFee, "max-fee", 0, "maximum consultation fee")
	cmd.Flags().IntVar(&minExperience, "min-experience", 0, "minimum years of experience")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum average rating")
	cmd.Flags().StringVar(&availability, "available", "", `filter by availability: "today" or "tomorrow"`)
	return cmd
}

func lawyersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <lawyer-id>",
		Short: "Show one lawyer's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			lawyer, err := a.client.GetLawyerByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printLawyerProfile(*lawyer)

			if len(lawyer.Reviews) > 0 {
				fmt.Printf("  %s\n", labelStyle.Render("Reviews:"))
				for _, review := range lawyer.Reviews {
					fmt.Printf("    %d/5 %s\n", review.Rating, review.Comment)
				}
			}
			return nil
		},
	}
}

func lawyersSpecializationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "specializations",
		Short: "List the searchable practice areas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			specializations, err := a.client.GetSpecializations(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range specializations {
				fmt.Println("  " + s.Name)
			}
			return nil
		},
	}
}

func lawyersReviewCmd() *cobra.Command {
	var rating int
	var comment string

	cmd := &cobra.Command{
		Use:   "review <lawyer-id>",
		Short: "Leave a rating and comment for a lawyer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleClient); err != nil {
				return err
			}

			form := forms.Review{Rating: rating, Comment: comment}
			if err := form.Validate(); err != nil {
				return err
			}

			lawyer, err := a.client.AddReview(cmd.Context(), args[0], form.Rating, form.Comment)
			if err != nil {
				return err
			}
			fmt.Printf("%s Review saved, %s now rates %.1f over %d reviews\n",
				okStyle.Render("✓"), lawyer.User.Name, lawyer.RatingAverage, lawyer.RatingCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	return cmd
}

func lawyersProfileCmd() *cobra.Command {
	var (
		specialization, city, education, description, photoURL string
		experience                                             int
		fee                                                    float64
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your own lawyer profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleLawyer); err != nil {
				return err
			}

			update := model.LawyerProfileUpdate{}
			edited := false
			flags := cmd.Flags()
			if flags.Changed("specialization") {
				update.Specialization, edited = utils.Ptr(specialization), true
			}
			if flags.Changed("city") {
				update.City, edited = utils.Ptr(city), true
			}
			if flags.Changed("experience") {
				update.ExperienceYears, edited = utils.Ptr(experience), true
			}
			if flags.Changed("fee") {
				update.ConsultationFee, edited = utils.Ptr(fee), true
			}
			if flags.Changed("education") {
				update.Education, edited = utils.Ptr(education), true
			}
			if flags.Changed("description") {
				update.Description, edited = utils.Ptr(description), true
			}
			if flags.Changed("photo-url") {
				update.ProfilePhotoURL, edited = utils.Ptr(photoURL), true
			}

			if !edited {
				profile, err := a.client.GetLawyerProfile(cmd.Context())
				if err != nil {
					return err
				}
				printLawyerProfile(*profile)
				return a.store.SetLawyerProfile(profile)
			}

			current, err := a.client.GetLawyerProfile(cmd.Context())
			if err != nil {
				return err
			}
			profile, err := a.client.UpdateLawyerProfile(cmd.Context(), current.ID, update)
			if err != nil {
				return err
			}
			if err := a.store.SetLawyerProfile(profile); err != nil {
				return err
			}
			fmt.Println(okStyle.Render("✓") + " Profile updated")
			printLawyerProfile(*profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&specialization, "specialization", "", "practice area")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().IntVar(&experience, "experience", 0, "years of experience")
	cmd.Flags().Float64Var(&fee, "fee", 0, "consultation fee")
	cmd.Flags().StringVar(&education, "education", "", "education summary")
	cmd.Flags().StringVar(&description, "description", "", "profile description")
	cmd.Flags().StringVar(&photoURL, "photo-url", "", "profile photo URL")
	return cmd
}

func lawyersAvailabilityCmd() *cobra.Command {
	var slots []string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Replace your weekly availability schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleLawyer); err != nil {
				return err
			}
			if len(slots) == 0 {
				return errors.Wrapf(errors.ErrValidation, "at least one --set entry is required")
			}

			entries, err := parseAvailability(slots)
			if err != nil {
				return err
			}
			availability := make([]model.AvailabilitySlot, 0, len(entries))
			for _, entry := range entries {
				availability = append(availability, model.AvailabilitySlot{Day: entry.Day, Slots: entry.Slots})
			}

			profile, err := a.client.UpdateAvailability(cmd.Context(), availability)
			if err != nil {
				return err
			}
			if err := a.store.SetLawyerProfile(profile); err != nil {
				return err
			}
			fmt.Println(okStyle.Render("✓") + " Availability updated")
			for _, slot := range profile.Availability {
				fmt.Printf("  %-10s %s\n", slot.Day, strings.Join(slot.Slots, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&slots, "set", nil, "day=HH:MM,HH:MM (repeatable)")
	return cmd
}

func lawyersDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your bookings and stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleLawyer); err != nil {
				return err
			}

			dashboard, err := a.client.GetLawyerDashboard(cmd.Context())
			if err != nil {
				return err
			}

			printTitle("Dashboard")
			printKV("Status", statusText(string(dashboard.Profile.Status)))
			printKV("Stats", fmt.Sprintf("%d pending, %d upcoming, %d completed",
				dashboard.Stats.Pending, dashboard.Stats.Upcoming, dashboard.Stats.Completed))

			fmt.Printf("  %s\n", labelStyle.Render("Pending requests:"))
			printBookings(dashboard.Pending)
			fmt.Printf("  %s\n", labelStyle.Render("Upcoming:"))
			printBookings(dashboard.Upcoming)
			return nil
		},
	}
}
