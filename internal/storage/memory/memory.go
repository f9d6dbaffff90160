// Package memory provides an in-memory ReportStore used in tests and
// single-node deployments without Postgres.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bhetiyo/backend/internal/domain"
)

// Store keeps reports in a map guarded by a RWMutex. The mutex is held
// across the whole claim check-and-set, which is what serializes
// concurrent claim attempts.
type Store struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]domain.Report
}

func New() *Store {
	return &Store{reports: make(map[uuid.UUID]domain.Report)}
}

func (s *Store) Create(ctx context.Context, r *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if _, exists := s.reports[r.ID]; exists {
		return fmt.Errorf("report %s: already exists", r.ID)
	}

	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.reports[r.ID] = *r
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok {
		return domain.Report{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

func (s *Store) ListAll(ctx context.Context) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(domain.Report) bool { return true }), nil
}

func (s *Store) ListByType(ctx context.Context, t domain.ReportType) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(r domain.Report) bool { return r.ReportType == t }), nil
}

func (s *Store) ListByPoster(ctx context.Context, userID uuid.UUID) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(r domain.Report) bool { return r.PostedBy == userID }), nil
}

// collect returns matching reports newest-first. Callers must hold the
// read lock.
func (s *Store) collect(keep func(domain.Report) bool) []domain.Report {
	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (s *Store) ClaimPending(ctx context.Context, reportID, claimant uuid.UUID, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[reportID]
	if !ok {
		return fmt.Errorf("report %s: %w", reportID, domain.ErrNotFound)
	}
	if r.ReportType != domain.ReportTypeFound || r.ClaimStatus != domain.ClaimNone {
		return fmt.Errorf("report %s is not claimable: %w", reportID, domain.ErrInvalidState)
	}

	r.ClaimStatus = domain.ClaimPending
	r.ClaimBy = &claimant
	r.ClaimScore = score
	r.UpdatedAt = time.Now().UTC()
	s.reports[reportID] = r
	return nil
}

func (s *Store) SetClaimStatus(ctx context.Context, reportID uuid.UUID, status domain.ClaimStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[reportID]
	if !ok {
		return fmt.Errorf("report %s: %w", reportID, domain.ErrNotFound)
	}
	if !status.ValidFor(r.ReportType) {
		return fmt.Errorf("status %q not valid for %s report: %w", status, r.ReportType, domain.ErrInvalidState)
	}

	r.ClaimStatus = status
	if status == domain.ClaimNone {
		r.ClaimBy = nil
		r.ClaimScore = 0
	}
	r.UpdatedAt = time.Now().UTC()
	s.reports[reportID] = r
	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[id]; !ok {
		return fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	delete(s.reports, id)
	return nil
}
