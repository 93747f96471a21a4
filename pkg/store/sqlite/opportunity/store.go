package opportunity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/report-atlas/pkg/models/store"
	"github.com/de-tools/report-atlas/pkg/store/sqlite"
	"github.com/rs/zerolog"
)

// Store reads and writes opportunity rows. Add joins the transaction carried by
// the context, if any.
type Store interface {
	Add(ctx context.Context, records []store.Opportunity) error
	List(ctx context.Context, limit int) ([]store.Opportunity, error)
	GetStats(ctx context.Context) (*store.OpportunityStats, error)
}

const columns = `
	id, name, stage, source, amount_micros, currency_code, close_date,
	created_at, updated_at, responsible_email, contact_id, contact_email,
	contact_first_name, contact_last_name, created_by_name, created_by_source,
	created_by_member_id`

type opportunityStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &opportunityStore{
		db: db,
	}, nil
}

func (s *opportunityStore) Add(ctx context.Context, records []store.Opportunity) error {
	if len(records) == 0 {
		return nil
	}

	query := `INSERT OR REPLACE INTO opportunities (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx := sqlite.GetTransaction(ctx); tx != nil {
		stmt, err = tx.PrepareContext(ctx, query)
	} else {
		stmt, err = s.db.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.ExecContext(ctx,
			r.ID,
			r.Name,
			r.Stage,
			r.Source,
			r.AmountMicros,
			r.CurrencyCode,
			r.CloseDate,
			r.CreatedAt,
			r.UpdatedAt,
			r.ResponsibleEmail,
			r.ContactID,
			r.ContactEmail,
			r.ContactFirstName,
			r.ContactLastName,
			r.CreatedByName,
			r.CreatedBySource,
			r.CreatedByMemberID,
		)
		if err != nil {
			return fmt.Errorf("insert opportunity %s: %w", r.ID, err)
		}
	}

	return nil
}

// List returns the most recently created opportunities first.
func (s *opportunityStore) List(ctx context.Context, limit int) ([]store.Opportunity, error) {
	logger := zerolog.Ctx(ctx)

	query := `SELECT ` + columns + ` FROM opportunities ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query opportunities: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close opportunity query rows")
		}
	}(rows)

	records := make([]store.Opportunity, 0)
	for rows.Next() {
		var r store.Opportunity
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Stage,
			&r.Source,
			&r.AmountMicros,
			&r.CurrencyCode,
			&r.CloseDate,
			&r.CreatedAt,
			&r.UpdatedAt,
			&r.ResponsibleEmail,
			&r.ContactID,
			&r.ContactEmail,
			&r.ContactFirstName,
			&r.ContactLastName,
			&r.CreatedByName,
			&r.CreatedBySource,
			&r.CreatedByMemberID,
		); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}

	return records, nil
}

func (s *opportunityStore) GetStats(ctx context.Context) (*store.OpportunityStats, error) {
	var total int64
	var last sql.NullString
	query := `SELECT COUNT(*), MAX(created_at) FROM opportunities`
	if err := s.db.QueryRowContext(ctx, query).Scan(&total, &last); err != nil {
		return nil, fmt.Errorf("get opportunity stats: %w", err)
	}

	stats := &store.OpportunityStats{RecordsCount: total}
	if last.Valid {
		stats.LastCreatedAt = &last.String
	}
	return stats, nil
}
