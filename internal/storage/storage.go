// Package storage defines the persistence boundary the core consumes.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhetiyo/backend/internal/domain"
)

// ReportStore is the persistence contract for reports.
//
// ClaimPending and SetClaimStatus are conditional updates: the
// read-modify-write of claim fields happens atomically inside the
// store, gated on the report's current status, so concurrent claim
// attempts serialize and at most one observes claim_status = none.
type ReportStore interface {
	Create(ctx context.Context, r *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (domain.Report, error)
	ListAll(ctx context.Context) ([]domain.Report, error)
	ListByType(ctx context.Context, t domain.ReportType) ([]domain.Report, error)
	ListByPoster(ctx context.Context, userID uuid.UUID) ([]domain.Report, error)

	// ClaimPending transitions a found report from none to pending,
	// recording the claimant and the similarity score they observed.
	// Returns domain.ErrNotFound if the report does not exist and
	// domain.ErrInvalidState if it is not a claimable found report in
	// status none. Either all three claim fields update or none do.
	ClaimPending(ctx context.Context, reportID, claimant uuid.UUID, score float64) error

	// SetClaimStatus force-sets a report's claim status (moderator
	// path). The status must be legal for the report's type. Setting a
	// found report back to none clears the claimant and the recorded
	// score.
	SetClaimStatus(ctx context.Context, reportID uuid.UUID, status domain.ClaimStatus) error

	Delete(ctx context.Context, id uuid.UUID) error
}
