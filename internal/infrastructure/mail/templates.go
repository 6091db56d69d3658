package mail

import (
	"fmt"
	"strings"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

const humanTimeLayout = "2 Jan 2006 15:04 MST"

// buildConfirmationMail renders the registration confirmation message with
// the link <frontendURL>/register/confirmation/<code>.
func buildConfirmationMail(frontendURL, to string, mail ports.ConfirmationMail) envelope {
	link := fmt.Sprintf("%s/register/confirmation/%s",
		strings.TrimRight(frontendURL, "/"), mail.Code)
	deadline := mail.AllowedUpTo.UTC().Format(humanTimeLayout)
	registered := mail.RegisteredAt.UTC().Format(humanTimeLayout)

	text := fmt.Sprintf(
		"Welcome to Compcar!\n\n"+
			"You registered on %s.\n"+
			"Confirm your registration before %s by opening:\n\n%s\n",
		registered, deadline, link)

	html := fmt.Sprintf(
		"<h1>Welcome to Compcar!</h1>"+
			"<p>You registered on %s.</p>"+
			"<p>Confirm your registration before <b>%s</b>:</p>"+
			"<p><a href=%q>Confirm registration</a></p>",
		registered, deadline, link)

	return envelope{
		To:      to,
		Subject: "Confirm your Compcar registration",
		HTML:    html,
		Text:    text,
	}
}

func buildWelcomeMail(to string) envelope {
	return envelope{
		To:      to,
		Subject: "Welcome to Compcar",
		HTML:    "<h1>Your account is active</h1><p>Happy browsing!</p>",
		Text:    "Your account is active. Happy browsing!\n",
	}
}
