package utils

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link from a phone number in any of
// the usual local spellings ("+242 06 000 00 00", "06-000-0000").
// wa.me only accepts digits.
func WhatsAppLink(phone, message string) string {
	digits := digitsOnly(phone)
	if digits == "" {
		return ""
	}
	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// TelLink builds a tel: link, keeping a leading + if present.
func TelLink(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return ""
	}
	digits := digitsOnly(trimmed)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "+") {
		return "tel:+" + digits
	}
	return "tel:" + digits
}

func MailtoLink(email, subject string) string {
	if email == "" {
		return ""
	}
	link := "mailto:" + email
	if subject != "" {
		link += "?subject=" + url.QueryEscape(subject)
	}
	return link
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
