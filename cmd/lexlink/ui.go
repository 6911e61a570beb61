package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lexlink/lexlink-cli/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func printTitle(title string) {
	fmt.Println(titleStyle.Render(title))
}

func printKV(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %s %s\n", labelStyle.Render(label+":"), value)
}

func statusText(status string) string {
	switch status {
	case string(model.LawyerApproved), string(model.BookingConfirmed), string(model.BookingCompleted):
		return okStyle.Render(status)
	case string(model.LawyerPending): // model.BookingPending is the same "pending" string
		return warnStyle.Render(status)
	case string(model.LawyerRejected), string(model.BookingCancelled):
		return badStyle.Render(status)
	}
	return status
}

func printLawyerSummary(p model.LawyerProfile) {
	rating := "no ratings yet"
	if p.RatingCount > 0 {
		rating = fmt.Sprintf("%.1f (%d reviews)", p.RatingAverage, p.RatingCount)
	}
	fmt.Printf("  %s  %s\n", labelStyle.Render(p.User.Name), faintStyle.Render(p.ID))
	fmt.Printf("    %s in %s, %d years, %.2f per consultation, rating %s\n",
		p.Specialization, p.City, p.ExperienceYears, p.ConsultationFee, rating)
}

func printLawyerProfile(p model.LawyerProfile) {
	printTitle(p.User.Name)
	printKV("ID", p.ID)
	printKV("Specialization", p.Specialization)
	printKV("City", p.City)
	printKV("Experience", fmt.Sprintf("%d years", p.ExperienceYears))
	printKV("Fee", fmt.Sprintf("%.2f", p.ConsultationFee))
	printKV("Status", statusText(string(p.Status)))
	if p.RatingCount > 0 {
		printKV("Rating", fmt.Sprintf("%.1f (%d reviews)", p.RatingAverage, p.RatingCount))
	}
	printKV("Education", p.Education)
	printKV("About", p.Description)
	if len(p.Availability) > 0 {
		fmt.Printf("  %s\n", labelStyle.Render("Availability:"))
		for _, slot := range p.Availability {
			fmt.Printf("    %-10s %s\n", slot.Day, strings.Join(slot.Slots, " "))
		}
	}
}

func printBookings(bookings []model.Booking) {
	if len(bookings) == 0 {
		fmt.Println(faintStyle.Render("  no bookings"))
		return
	}
	for _, b := range bookings {
		fmt.Printf("  %s  %s %s  %s\n", faintStyle.Render(b.ID), b.SlotDate, b.SlotTime, statusText(string(b.Status)))
		if b.Reason != "" {
			fmt.Printf("    %s\n", b.Reason)
		}
		if b.Notes != "" {
			fmt.Printf("    %s\n", faintStyle.Render(b.Notes))
		}
	}
}
