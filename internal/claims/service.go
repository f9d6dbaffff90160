// Package claims implements the claim state machine for found reports.
package claims

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bhetiyo/backend/internal/domain"
	"github.com/bhetiyo/backend/internal/storage"
)

// Service governs claim transitions. The actual status flip is a
// conditional update inside the store, so the checks here can race with
// a concurrent claim and still only one claimant ever wins.
type Service struct {
	store storage.ReportStore
	log   *logrus.Entry
}

func NewService(store storage.ReportStore, log *logrus.Entry) *Service {
	return &Service{store: store, log: log}
}

// SubmitClaim transitions a found report from none to pending on behalf
// of claimant, recording the similarity score the claimant observed
// (stored as 0 when non-finite).
//
// Fails with ErrNotFound for a missing report, ErrInvalidState for a
// lost report or a report already claimed, and ErrForbidden when the
// claimant posted the report themselves. On failure nothing changes.
func (s *Service) SubmitClaim(ctx context.Context, reportID, claimant uuid.UUID, observedScore float64) error {
	report, err := s.store.Get(ctx, reportID)
	if err != nil {
		return err
	}

	if report.ReportType != domain.ReportTypeFound {
		return fmt.Errorf("only found reports can be claimed: %w", domain.ErrInvalidState)
	}
	if report.PostedBy == claimant {
		return fmt.Errorf("cannot claim your own report: %w", domain.ErrForbidden)
	}
	if report.ClaimStatus != domain.ClaimNone {
		return fmt.Errorf("report already claimed (%s): %w", report.ClaimStatus, domain.ErrInvalidState)
	}

	score := observedScore
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}

	// The store re-checks status under its own lock; a concurrent
	// winner makes this return ErrInvalidState.
	if err := s.store.ClaimPending(ctx, reportID, claimant, score); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"report":   reportID,
		"claimant": claimant,
		"score":    score,
	}).Info("claim submitted")
	return nil
}

// SetClaimStatus is the moderator override: it force-sets a report's
// claim status to any value legal for the report's type. Approving a
// pending claim keeps the claimant and score; reverting to none clears
// them. Caller authorization is the transport layer's concern.
func (s *Service) SetClaimStatus(ctx context.Context, reportID uuid.UUID, status domain.ClaimStatus) error {
	if !status.ValidFor(domain.ReportTypeFound) && !status.ValidFor(domain.ReportTypeLost) {
		return fmt.Errorf("unknown claim status %q: %w", status, domain.ErrInvalidState)
	}

	if err := s.store.SetClaimStatus(ctx, reportID, status); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"report": reportID,
		"status": status,
	}).Info("claim status set")
	return nil
}
