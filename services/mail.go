package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"lifemoves/models"
)

// SendFeedbackEmail notifies the team about a new feedback submission.
// Best effort: it is called from a goroutine, skips silently when SendGrid
// is not configured and never lets a panic escape.
func SendFeedbackEmail(apiKey, toEmail string, fb models.Feedback) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Feedback mail panic recovered: %v\n", r)
		}
	}()

	if apiKey == "" || toEmail == "" {
		return
	}

	subject := "New feedback received"
	if fb.Rating != nil {
		subject = fmt.Sprintf("New feedback received (%d/5)", *fb.Rating)
	}

	from := "anonymous"
	if fb.UserID != "" {
		from = fb.UserID
	}
	body := fmt.Sprintf("From: %s\n\n%s", from, fb.Message)

	message := mail.NewSingleEmail(
		mail.NewEmail("Life Moves", toEmail),
		subject,
		mail.NewEmail("Admin", toEmail),
		body,
		body,
	)

	response, err := sendgrid.NewSendClient(apiKey).Send(message)
	if err != nil {
		fmt.Printf("Error sending feedback email: %v\n", err)
		return
	}
	if response.StatusCode >= 400 {
		fmt.Printf("SendGrid API error: status %d\n", response.StatusCode)
	}
}
