package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lexlink/lexlink-cli/forms"
	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/token"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			form := forms.Login{Email: email, Password: password}
			if err := form.Validate(); err != nil {
				return err
			}

			resp, err := a.client.Login(cmd.Context(), form.Email, form.Password)
			if err != nil {
				if errors.Is(err, errors.ErrUnauthorized) {
					return errors.ErrInvalidCredentials
				}
				return err
			}
			if err := a.store.SetAuth(resp.User, resp.Tokens, resp.LawyerProfile); err != nil {
				return err
			}

			fmt.Printf("%s Logged in as %s (%s)\n", okStyle.Render("✓"), resp.User.Name, resp.User.Role)
			if resp.LawyerProfile != nil && resp.LawyerProfile.Status == model.LawyerPending {
				fmt.Println(warnStyle.Render("Your lawyer profile is awaiting admin approval."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session and credentials",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.store.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if check {
				if err := a.store.CheckAuth(cmd.Context()); err != nil {
					return err
				}
			}

			user, err := a.requireAuth()
			if err != nil {
				return err
			}

			printTitle(user.Name)
			printKV("ID", user.ID)
			printKV("Email", user.Email)
			printKV("Role", string(user.Role))
			printKV("City", user.City)

			snap := a.store.Snapshot()
			if snap.LawyerProfile != nil {
				printKV("Profile status", statusText(string(snap.LawyerProfile.Status)))
			}
			if snap.Tokens != nil {
				if expiry, err := token.ExpiryOf(snap.Tokens.AccessToken); err == nil {
					label := fmt.Sprintf("%s (%s)", expiry.Format(time.RFC3339), time.Until(expiry).Round(time.Second))
					if token.IsExpired(snap.Tokens.AccessToken) {
						label = warnStyle.Render("expired, will refresh on next call")
					}
					printKV("Access token", label)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "revalidate the session against the backend first")
	return cmd
}

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a client or lawyer account",
	}
	cmd.AddCommand(registerClientCmd(), registerLawyerCmd())
	return cmd
}

func registerClientCmd() *cobra.Command {
	var form forms.RegisterClient

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Create a client account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if form.Password != "" && form.ConfirmPassword == "" {
				form.ConfirmPassword = form.Password
			}
			if err := form.Validate(); err != nil {
				return err
			}

			resp, err := a.client.RegisterClient(cmd.Context(), form.Request())
			if err != nil {
				return err
			}
			if err := a.store.SetAuth(resp.User, resp.Tokens, nil); err != nil {
				return err
			}

			fmt.Printf("%s Account created, logged in as %s\n", okStyle.Render("✓"), resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	cmd.Flags().StringVar(&form.City, "city", "", "city")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	return cmd
}

func registerLawyerCmd() *cobra.Command {
	var form forms.RegisterLawyer
	var availability []string

	cmd := &cobra.Command{
		Use:   "lawyer",
		Short: "Create a lawyer account with an availability schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			form.Availability, err = parseAvailability(availability)
			if err != nil {
				return err
			}
			if form.Password != "" && form.ConfirmPassword == "" {
				form.ConfirmPassword = form.Password
			}
			if err := form.Validate(); err != nil {
				return err
			}

			resp, err := a.client.RegisterLawyer(cmd.Context(), form.Request())
			if err != nil {
				return err
			}
			if err := a.store.SetAuth(resp.User, resp.Tokens, resp.LawyerProfile); err != nil {
				return err
			}

			fmt.Printf("%s Account created, logged in as %s\n", okStyle.Render("✓"), resp.User.Email)
			fmt.Println(warnStyle.Render("Your profile is pending approval and will not appear in search until an admin approves it."))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	cmd.Flags().StringVar(&form.Specialization, "specialization", "", "practice area, e.g. family")
	cmd.Flags().IntVar(&form.ExperienceYears, "experience", 0, "years of experience")
	cmd.Flags().StringVar(&form.City, "city", "", "city")
	cmd.Flags().Float64Var(&form.ConsultationFee, "fee", 0, "consultation fee")
	cmd.Flags().StringVar(&form.Education, "education", "", "education summary")
	cmd.Flags().StringVar(&form.Description, "description", "", "profile description")
	cmd.Flags().StringArrayVar(&availability, "availability", nil, `weekly slots as day=HH:MM,HH:MM (repeatable), e.g. --availability monday=09:00,10:00`)
	return cmd
}

// parseAvailability turns repeated day=HH:MM,HH:MM flags into schedule
// entries. Content validation happens in the form.
func parseAvailability(specs []string) ([]forms.AvailabilityEntry, error) {
	entries := make([]forms.AvailabilityEntry, 0, len(specs))
	for _, spec := range specs {
		day, rawSlots, found := strings.Cut(spec, "=")
		if !found {
			return nil, errors.Wrapf(errors.ErrValidation, "availability %q must look like monday=09:00,10:00", spec)
		}
		slots := strings.Split(rawSlots, ",")
		for i := range slots {
			slots[i] = strings.TrimSpace(slots[i])
		}
		entries = append(entries, forms.AvailabilityEntry{
			Day:   strings.ToLower(strings.TrimSpace(day)),
			Slots: slots,
		})
	}
	return entries, nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", errors.Wrapf(err, "[promptLine] reading input")
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", errors.Wrapf(err, "[promptPassword] reading password")
	}
	return string(raw), nil
}
