package api

type Amount struct {
	AmountMicros int64  `json:"amountMicros"`
	CurrencyCode string `json:"currencyCode"`
}

type Emails struct {
	PrimaryEmail     string   `json:"primaryEmail"`
	AdditionalEmails []string `json:"additionalEmails,omitempty"`
}

// Responsible accepts both the flat e-mail shape and the nested `emails` shape
// some CRM exports produce.
type Responsible struct {
	PrimaryEmail     string   `json:"primaryEmail,omitempty"`
	AdditionalEmails []string `json:"additionalEmails,omitempty"`
	Emails           *Emails  `json:"emails,omitempty"`
}

type PersonName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Contact struct {
	ID     string      `json:"id"`
	Emails *Emails     `json:"emails,omitempty"`
	Name   *PersonName `json:"name,omitempty"`
}

type Actor struct {
	Source            string  `json:"source"`
	WorkspaceMemberID *string `json:"workspaceMemberId,omitempty"`
	Name              string  `json:"name"`
}

type Opportunity struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Stage            string       `json:"stage"`
	Source           *string      `json:"source,omitempty"`
	Amount           *Amount      `json:"amount,omitempty"`
	CloseDate        *string      `json:"closeDate,omitempty"`
	CreatedAt        string       `json:"createdAt"`
	UpdatedAt        *string      `json:"updatedAt,omitempty"`
	CreatedBy        *Actor       `json:"createdBy,omitempty"`
	Responsible      *Responsible `json:"responsavel,omitempty"`
	PointOfContact   *Contact     `json:"pointOfContact,omitempty"`
	PointOfContactID *string      `json:"pointOfContactId,omitempty"`
}
