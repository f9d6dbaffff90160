package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportType says whether the poster lost the item or found it.
// Immutable after creation.
type ReportType string

const (
	ReportTypeLost  ReportType = "lost"
	ReportTypeFound ReportType = "found"
)

// Valid reports whether t is a known report type.
func (t ReportType) Valid() bool {
	return t == ReportTypeLost || t == ReportTypeFound
}

// ClaimStatus tracks the claim lifecycle of a report.
//
// Found reports move none -> pending -> approved (and back to none when
// a moderator rejects a claim). Lost reports track a separate two-state
// lifecycle: not-found-yet -> has-been-found. The two sets are not
// interchangeable; ValidFor enforces which values are legal per type.
type ClaimStatus string

const (
	ClaimNone     ClaimStatus = "none"
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"

	ClaimNotFoundYet  ClaimStatus = "not-found-yet"
	ClaimHasBeenFound ClaimStatus = "has-been-found"
)

// ValidFor reports whether s is a legal claim status for reports of type t.
func (s ClaimStatus) ValidFor(t ReportType) bool {
	switch t {
	case ReportTypeFound:
		return s == ClaimNone || s == ClaimPending || s == ClaimApproved
	case ReportTypeLost:
		return s == ClaimNotFoundYet || s == ClaimHasBeenFound
	}
	return false
}

// InitialClaimStatus returns the claim status a fresh report starts in.
func InitialClaimStatus(t ReportType) ClaimStatus {
	if t == ReportTypeLost {
		return ClaimNotFoundYet
	}
	return ClaimNone
}

// Report is a lost or found item posting.
//
// PostedBy is set once at creation and never reassigned. ClaimStatus,
// ClaimBy and ClaimScore are mutated only through the claim workflow or
// a moderator action; everything else is immutable for matching purposes.
type Report struct {
	ID          uuid.UUID
	ItemName    string
	ReportType  ReportType
	Location    string
	Contact     string
	Date        time.Time
	Description string
	PostedBy    uuid.UUID
	ClaimStatus ClaimStatus
	ClaimBy     *uuid.UUID
	// ClaimScore records the similarity percentage (0-100) the claimant
	// saw when claiming, 0 when no score was observed.
	ClaimScore float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SearchText is the document text used for free-text search: the item
// name plus the description.
func (r *Report) SearchText() string {
	return r.ItemName + " " + r.Description
}
