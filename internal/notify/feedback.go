package notify

import (
	"fmt"
	"html"
)

// FeedbackReceived builds the message sent to the user a feedback is addressed to.
func FeedbackReceived(toEmail, toName, fromName string) Message {
	if fromName == "" {
		fromName = "A colleague"
	}
	greeting := "Hi"
	if toName != "" {
		greeting = "Hi " + toName
	}

	text := fmt.Sprintf("%s,\n\n%s sent you new feedback. Open the app to read it.", greeting, fromName)
	body := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">%s,</h2>
			<p><strong>%s</strong> sent you new feedback.</p>
			<p style="color: #888; font-size: 14px;">Open the app to read it.</p>
		</div>
	`, html.EscapeString(greeting), html.EscapeString(fromName))

	return Message{
		To:      toEmail,
		Subject: "You received new feedback",
		Text:    text,
		HTML:    body,
	}
}
