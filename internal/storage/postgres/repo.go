// Package postgres implements ReportStore on PostgreSQL using squirrel
// query builders and pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bhetiyo/backend/internal/domain"
)

// Querier is the subset of pgxpool.Pool the repo needs. pgxmock
// satisfies it too, which is how the tests run without a database.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const table = "reports"

var columns = []string{
	"id", "item_name", "report_type", "location", "contact", "date",
	"description", "posted_by", "claim_status", "claim_by", "claim_score",
	"created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db Querier
}

func New(db Querier) *Repo {
	return &Repo{db: db}
}

// reportRow mirrors the reports table for pgxscan.
type reportRow struct {
	ID          uuid.UUID  `db:"id"`
	ItemName    string     `db:"item_name"`
	ReportType  string     `db:"report_type"`
	Location    string     `db:"location"`
	Contact     string     `db:"contact"`
	Date        time.Time  `db:"date"`
	Description string     `db:"description"`
	PostedBy    uuid.UUID  `db:"posted_by"`
	ClaimStatus string     `db:"claim_status"`
	ClaimBy     *uuid.UUID `db:"claim_by"`
	ClaimScore  float64    `db:"claim_score"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (row reportRow) toDomain() domain.Report {
	return domain.Report{
		ID:          row.ID,
		ItemName:    row.ItemName,
		ReportType:  domain.ReportType(row.ReportType),
		Location:    row.Location,
		Contact:     row.Contact,
		Date:        row.Date,
		Description: row.Description,
		PostedBy:    row.PostedBy,
		ClaimStatus: domain.ClaimStatus(row.ClaimStatus),
		ClaimBy:     row.ClaimBy,
		ClaimScore:  row.ClaimScore,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *Repo) Create(ctx context.Context, report *domain.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	report.CreatedAt = now
	report.UpdatedAt = now

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(report.ID, report.ItemName, string(report.ReportType),
			report.Location, report.Contact, report.Date, report.Description,
			report.PostedBy, string(report.ClaimStatus), report.ClaimBy,
			report.ClaimScore, report.CreatedAt, report.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert report: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert report %s: %w", report.ID, err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (domain.Report, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Report{}, fmt.Errorf("build get report: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Report{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
		}
		return domain.Report{}, fmt.Errorf("get report %s: %w", id, err)
	}
	return row.toDomain(), nil
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Report, error) {
	return r.list(ctx, sq.Eq{})
}

func (r *Repo) ListByType(ctx context.Context, t domain.ReportType) ([]domain.Report, error) {
	return r.list(ctx, sq.Eq{"report_type": string(t)})
}

func (r *Repo) ListByPoster(ctx context.Context, userID uuid.UUID) ([]domain.Report, error) {
	return r.list(ctx, sq.Eq{"posted_by": userID})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.Report, error) {
	builder := psql.Select(columns...).From(table).OrderBy("created_at DESC")
	if len(where) > 0 {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reports: %w", err)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]domain.Report, len(rows))
	for i, row := range rows {
		reports[i] = row.toDomain()
	}
	return reports, nil
}

// ClaimPending is a single conditional UPDATE gated on the current
// status, so two concurrent claims cannot both observe "none": the
// database serializes the row update and the loser matches zero rows.
func (r *Repo) ClaimPending(ctx context.Context, reportID, claimant uuid.UUID, score float64) error {
	query, args, err := psql.Update(table).
		Set("claim_status", string(domain.ClaimPending)).
		Set("claim_by", claimant).
		Set("claim_score", score).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{
			"id":           reportID,
			"report_type":  string(domain.ReportTypeFound),
			"claim_status": string(domain.ClaimNone),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build claim update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("claim report %s: %w", reportID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainConditionalMiss(ctx, reportID)
	}
	return nil
}

// SetClaimStatus force-sets the status, still gated on the report type
// matching the status family. Reverting to none clears the claimant.
func (r *Repo) SetClaimStatus(ctx context.Context, reportID uuid.UUID, status domain.ClaimStatus) error {
	var forType domain.ReportType
	switch {
	case status.ValidFor(domain.ReportTypeFound):
		forType = domain.ReportTypeFound
	case status.ValidFor(domain.ReportTypeLost):
		forType = domain.ReportTypeLost
	default:
		return fmt.Errorf("unknown claim status %q: %w", status, domain.ErrInvalidState)
	}

	builder := psql.Update(table).
		Set("claim_status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": reportID, "report_type": string(forType)})
	if status == domain.ClaimNone {
		builder = builder.Set("claim_by", nil).Set("claim_score", 0)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build claim status update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set claim status on %s: %w", reportID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainConditionalMiss(ctx, reportID)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete report: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// explainConditionalMiss turns a zero-row conditional update into the
// right sentinel: ErrNotFound when the report is gone, ErrInvalidState
// when it exists but the gate did not match.
func (r *Repo) explainConditionalMiss(ctx context.Context, reportID uuid.UUID) error {
	if _, err := r.Get(ctx, reportID); err != nil {
		return err
	}
	return fmt.Errorf("report %s: %w", reportID, domain.ErrInvalidState)
}
