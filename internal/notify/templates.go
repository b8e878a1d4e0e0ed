package notify

import (
	"fmt"
	"strconv"
	"strings"
)

// Message is one plain-text email
type Message struct {
	To      string
	Subject string
	Body    string
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func countOrNA(n int) string {
	if n == 0 {
		return "N/A"
	}
	return strconv.Itoa(n)
}

// Compose builds the customer and operator emails for ev. The customer copy
// is skipped without an address, as is the operator copy without adminEmail.
func Compose(ev Event, adminEmail string) []Message {
	var to, subject, body, adminBody string

	switch {
	case ev.Kind == KindBookingCreated && ev.Booking != nil:
		b := ev.Booking
		title := b.TourTitle
		if title == "" {
			title = "Tour"
		}
		name := b.Name
		if name == "" {
			name = "Traveler"
		}
		to = b.Email
		subject = "Booking received: " + title
		body = strings.Join([]string{
			fmt.Sprintf("Hello %s,", name),
			"",
			"We have received your booking request.",
			"",
			"Tour: " + orNA(b.TourTitle),
			fmt.Sprintf("Dates: %s to %s", orNA(b.StartDate), orNA(b.EndDate)),
			"Participants: " + countOrNA(b.Participants),
			"Total: " + orNA(b.TotalPrice),
			"",
			"We will follow up shortly.",
		}, "\n")
		adminBody = strings.Join([]string{
			"New booking request received.",
			"",
			"Name: " + orNA(b.Name),
			"Email: " + orNA(b.Email),
			"Tour: " + orNA(b.TourTitle),
			fmt.Sprintf("Dates: %s to %s", orNA(b.StartDate), orNA(b.EndDate)),
			"Participants: " + countOrNA(b.Participants),
			"Total: " + orNA(b.TotalPrice),
		}, "\n")

	case ev.Kind == KindCustomRequestCreated && ev.CustomRequest != nil:
		r := ev.CustomRequest
		name := r.Name
		if name == "" {
			name = "Traveler"
		}
		to = r.Email
		subject = "Custom tour request received"
		body = strings.Join([]string{
			fmt.Sprintf("Hello %s,", name),
			"",
			"We have received your custom tour request.",
			"",
			"Group size: " + countOrNA(r.GroupSize),
			fmt.Sprintf("Dates: %s to %s", orNA(r.StartDate), orNA(r.EndDate)),
			fmt.Sprintf("Route: %s to %s", orNA(r.StartLocation), orNA(r.EndLocation)),
			"",
			"We will follow up with a proposal soon.",
		}, "\n")
		adminBody = strings.Join([]string{
			"New custom tour request received.",
			"",
			"Name: " + orNA(r.Name),
			"Email: " + orNA(r.Email),
			"Group size: " + countOrNA(r.GroupSize),
			fmt.Sprintf("Dates: %s to %s", orNA(r.StartDate), orNA(r.EndDate)),
			fmt.Sprintf("Route: %s to %s", orNA(r.StartLocation), orNA(r.EndLocation)),
			"Budget: " + orNA(r.Budget),
		}, "\n")

	default:
		return nil
	}

	var out []Message
	if to != "" {
		out = append(out, Message{To: to, Subject: subject, Body: body})
	}
	if adminEmail != "" {
		out = append(out, Message{To: adminEmail, Subject: "Admin: " + subject, Body: adminBody})
	}
	return out
}
