package accounts

import (
	"context"
	"fmt"
)

// logMailer is the default Mailer. It prints the notification instead of
// sending it, which is enough for local development; production wires a real
// delivery collaborator through WithMailer.
type logMailer struct{}

func (logMailer) SendActivationEmail(_ context.Context, email, username, code string) error {
	printEmailNotification("activation code", email, username, code)
	return nil
}

func (logMailer) SendPasswordResetEmail(_ context.Context, email, username, code string) error {
	printEmailNotification("password reset code", email, username, code)
	return nil
}

func printEmailNotification(kind, email, username, code string) {
	fmt.Println("====== SENDING EMAIL NOTIFICATION =======")
	fmt.Printf("to: %s (%s)\n", email, username)
	fmt.Printf("%s: %s\n", kind, code)
}
