package notify

import (
	"fmt"
	"strings"
)

const notApplicable = "N/A"

func orNA(s *string) string {
	if s == nil || *s == "" {
		return notApplicable
	}
	return *s
}

func mailSubject(c Contact) string {
	return "New Contact Form Submission from " + c.Name
}

func mailBody(c Contact) string {
	return fmt.Sprintf(`New contact form submission received:

Name: %s
Email: %s
Company: %s
Service Interest: %s

Message:
%s

---
This notification was sent automatically from DataLux Consulting website.
`, c.Name, c.Email, orNA(c.Company), orNA(c.Service), c.Message)
}

// markdownEscaper backslash-escapes the entity markers of Telegram's legacy
// Markdown so submitted text cannot open or close an entity.
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// chatText uses Telegram's legacy Markdown: *bold* and _italic_. Every
// submitted value is escaped.
func chatText(c Contact) string {
	return fmt.Sprintf(`🔔 *New Contact Form Submission*

👤 *Name:* %s
📧 *Email:* %s
🏢 *Company:* %s
🛠️ *Service Interest:* %s

💬 *Message:*
%s

---
_DataLux Consulting Website_
`, escapeMarkdown(c.Name), escapeMarkdown(c.Email),
		escapeMarkdown(orNA(c.Company)), escapeMarkdown(orNA(c.Service)),
		escapeMarkdown(c.Message))
}
