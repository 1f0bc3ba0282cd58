package utils

import (
	"net/url"
	"strings"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// encodeComponent escapes s for use inside a URI query component, with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MailtoURL builds a mailto: link with percent-encoded subject and body.
// The address keeps its "@" unescaped.
func MailtoURL(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(strings.ReplaceAll(encodeComponent(strings.TrimSpace(to)), "%40", "@"))
	b.WriteString("?subject=")
	b.WriteString(encodeComponent(subject))
	b.WriteString("&body=")
	b.WriteString(encodeComponent(body))
	return b.String()
}

// MapsURL returns a Google Maps search link for a free-text address.
func MapsURL(address string) string {
	return mapsSearchURL + encodeComponent(strings.TrimSpace(address))
}
