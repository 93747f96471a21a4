package store

import "database/sql"

// TimestampLayout is how timestamp columns are written: always UTC and fixed
// width, so ORDER BY on the text is chronological.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// Opportunity is the flattened row shape of the opportunities table.
// Timestamps are ISO-8601 strings in TimestampLayout.
type Opportunity struct {
	ID                string
	Name              string
	Stage             string
	Source            sql.NullString
	AmountMicros      sql.NullInt64
	CurrencyCode      sql.NullString
	CloseDate         sql.NullString
	CreatedAt         string
	UpdatedAt         sql.NullString
	ResponsibleEmail  sql.NullString
	ContactID         sql.NullString
	ContactEmail      sql.NullString
	ContactFirstName  sql.NullString
	ContactLastName   sql.NullString
	CreatedByName     sql.NullString
	CreatedBySource   sql.NullString
	CreatedByMemberID sql.NullString
}

type OpportunityStats struct {
	RecordsCount  int64
	LastCreatedAt *string
}
