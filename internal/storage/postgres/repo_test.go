package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhetiyo/backend/internal/domain"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock)
}

func reportRows(r domain.Report) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow(
		r.ID, r.ItemName, string(r.ReportType), r.Location, r.Contact,
		r.Date, r.Description, r.PostedBy, string(r.ClaimStatus),
		r.ClaimBy, r.ClaimScore, r.CreatedAt, r.UpdatedAt,
	)
}

func sampleReport(typ domain.ReportType) domain.Report {
	now := time.Now().UTC()
	return domain.Report{
		ID:          uuid.New(),
		ItemName:    "Wallet",
		ReportType:  typ,
		Date:        now,
		Description: "brown leather wallet",
		PostedBy:    uuid.New(),
		ClaimStatus: domain.InitialClaimStatus(typ),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreate(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec("INSERT INTO reports").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	r := sampleReport(domain.ReportTypeFound)
	r.ID = uuid.Nil
	require.NoError(t, repo.Create(context.Background(), &r))

	assert.NotEqual(t, uuid.Nil, r.ID, "Create assigns an id")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	mock, repo := newMock(t)
	want := sampleReport(domain.ReportTypeLost)

	mock.ExpectQuery("SELECT .+ FROM reports").
		WithArgs(want.ID).
		WillReturnRows(reportRows(want))

	got, err := repo.Get(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, domain.ReportTypeLost, got.ReportType)
	assert.Equal(t, domain.ClaimNotFoundYet, got.ClaimStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM reports").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByType(t *testing.T) {
	mock, repo := newMock(t)
	want := sampleReport(domain.ReportTypeFound)

	mock.ExpectQuery("SELECT .+ FROM reports WHERE report_type = .+ ORDER BY created_at DESC").
		WithArgs(string(domain.ReportTypeFound)).
		WillReturnRows(reportRows(want))

	got, err := repo.ListByType(context.Background(), domain.ReportTypeFound)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want.ID, got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimPending_Wins(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE reports SET claim_status").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.ClaimPending(context.Background(), id, uuid.New(), 66))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimPending_LosesRace(t *testing.T) {
	mock, repo := newMock(t)
	already := sampleReport(domain.ReportTypeFound)
	already.ClaimStatus = domain.ClaimPending

	// The conditional update matches nothing; the follow-up read finds
	// the report, so the failure is a state conflict, not a missing row.
	mock.ExpectExec("UPDATE reports SET claim_status").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT .+ FROM reports").
		WillReturnRows(reportRows(already))

	err := repo.ClaimPending(context.Background(), already.ID, uuid.New(), 66)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimPending_MissingReport(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reports SET claim_status").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT .+ FROM reports").
		WillReturnError(pgx.ErrNoRows)

	err := repo.ClaimPending(context.Background(), uuid.New(), uuid.New(), 66)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetClaimStatus_Approve(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reports SET claim_status").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetClaimStatus(context.Background(), uuid.New(), domain.ClaimApproved))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetClaimStatus_NoneClearsClaimant(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reports SET claim_status = .+ claim_by = .+ claim_score").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetClaimStatus(context.Background(), uuid.New(), domain.ClaimNone))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetClaimStatus_UnknownValue(t *testing.T) {
	mock, repo := newMock(t)

	// Rejected before any SQL runs.
	err := repo.SetClaimStatus(context.Background(), uuid.New(), domain.ClaimStatus("bogus"))
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec("DELETE FROM reports").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
