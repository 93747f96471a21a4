package domain

import "time"

type Stage string

const (
	StageNew        Stage = "NEW"
	StageInbound    Stage = "INBOUND"
	StageOutbound   Stage = "OUTBOUND"
	StageScreening  Stage = "SCREENING"
	StageMeeting    Stage = "MEETING"
	StageProposal   Stage = "PROPOSAL"
	StageCustomer   Stage = "CUSTOMER"
	StageClosedWon  Stage = "CLOSED_WON"
	StageClosedLost Stage = "CLOSED_LOST"
)

// TimestampLayouts are the textual timestamp forms accepted for record dates
// and for date filter values.
var TimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type Source string

const (
	SourceInbound  Source = "INBOUND"
	SourceOutbound Source = "OUTBOUND"
)

// Amount is a monetary value expressed in integer micro-units (1 unit = 1,000,000 micros)
type Amount struct {
	AmountMicros int64
	CurrencyCode string // BRL
}

type Emails struct {
	PrimaryEmail     string
	AdditionalEmails []string
}

type PersonName struct {
	FirstName string
	LastName  string
}

type Contact struct {
	ID     string
	Emails *Emails
	Name   *PersonName
}

type Actor struct {
	Source            string // MANUAL, IMPORT, API
	WorkspaceMemberID string
	Name              string
}

// Opportunity is the record the report engine aggregates over. It is treated as read-only.
type Opportunity struct {
	ID             string
	Name           string
	Stage          Stage
	Source         Source // optional
	Amount         *Amount
	CloseDate      *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	CreatedBy      *Actor
	Responsible    *Emails // direct e-mail field, takes precedence over PointOfContact
	PointOfContact *Contact
}
