package mailer

import (
	"net/url"
	"strings"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

const (
	recipient = "jordan.pennells@csiro.au"
	subject   = "New Extrusion Symposium Stakeholder"
)

// BuildMailto encodes a submission as a mailto: URI with a fixed recipient
// and subject. The body is "label: value" lines in a fixed field order,
// percent-encoded. Pure and stateless; sending is left to the user's mail
// client.
func BuildMailto(sub models.Submission) string {
	lines := []string{
		"Name: " + sub.Name,
		"Department/Program: " + sub.Department,
		"Position: " + sub.Position,
		"Country: " + sub.Country,
		"City: " + sub.City,
		"Status: " + sub.Status,
	}
	body := strings.Join(lines, "\n")
	return "mailto:" + recipient +
		"?subject=" + encode(subject) +
		"&body=" + encode(body)
}

// encode percent-encodes a mailto component (spaces as %20, never +).
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
