package service

import (
	"github.com/jpennells/stakeholder-map-go/internal/mailer"
	"github.com/jpennells/stakeholder-map-go/internal/models"
)

// SubmissionService turns a submission form into a mailto URI. Nothing is
// persisted; sending is delegated to the user's mail client.
type SubmissionService struct{}

// NewSubmissionService creates a new submission service.
func NewSubmissionService() *SubmissionService {
	return &SubmissionService{}
}

// PrepareEmail builds the mailto URI for a submission. An absent status
// defaults to plain Stakeholder, matching the form's default selection.
func (s *SubmissionService) PrepareEmail(sub models.Submission) string {
	if sub.Status == "" {
		sub.Status = string(models.StatusStakeholder)
	}
	return mailer.BuildMailto(sub)
}
