package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexlink/lexlink-cli/model"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform administration",
	}
	cmd.AddCommand(
		adminOverviewCmd(),
		adminApproveCmd(),
		adminRejectCmd(),
		adminBookingsCmd(),
		adminAnalyticsCmd(),
	)
	return cmd
}

func adminOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show lawyers awaiting approval and headline metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleAdmin); err != nil {
				return err
			}

			overview, err := a.client.GetAdminOverview(cmd.Context())
			if err != nil {
				return err
			}

			printTitle("Overview")
			printKV("Lawyers", fmt.Sprintf("%d total, %d approved, %d pending",
				overview.Metrics.Total, overview.Metrics.Approved, overview.Metrics.Pending))
			if len(overview.Pending) > 0 {
				fmt.Printf("  %s\n", labelStyle.Render("Awaiting approval:"))
				for _, lawyer := range overview.Pending {
					printLawyerSummary(lawyer)
				}
			}
			return nil
		},
	}
}

func adminApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <lawyer-id>",
		Short: "Approve a pending lawyer profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleAdmin); err != nil {
				return err
			}

			lawyer, err := a.client.ApproveLawyer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s is now %s\n", okStyle.Render("✓"), lawyer.User.Name, statusText(string(lawyer.Status)))
			return nil
		},
	}
}

func adminRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <lawyer-id>",
		Short: "Reject a pending lawyer profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleAdmin); err != nil {
				return err
			}

			lawyer, err := a.client.RejectLawyer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s is now %s\n", okStyle.Render("✗"), lawyer.User.Name, statusText(string(lawyer.Status)))
			return nil
		},
	}
}

func adminBookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List every booking on the platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleAdmin); err != nil {
				return err
			}

			bookings, err := a.client.GetAllBookings(cmd.Context())
			if err != nil {
				return err
			}
			printTitle("All bookings")
			printBookings(bookings)
			return nil
		},
	}
}

func adminAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show booking analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireRole(model.RoleAdmin); err != nil {
				return err
			}

			analytics, err := a.client.GetAnalytics(cmd.Context())
			if err != nil {
				return err
			}
			printTitle("Analytics")
			printKV("Total bookings", fmt.Sprintf("%d", analytics.Total))
			printKV("Confirmed", fmt.Sprintf("%d", analytics.Confirmed))
			printKV("Today", fmt.Sprintf("%d", analytics.Today))
			return nil
		},
	}
}
