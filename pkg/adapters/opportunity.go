package adapters

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/models/store"
)

func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range domain.TimestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func parseOptionalTimestamp(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

func MapApiOpportunityToDomain(opp api.Opportunity) (domain.Opportunity, error) {
	createdAt, err := ParseTimestamp(opp.CreatedAt)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("opportunity %s: createdAt: %w", opp.ID, err)
	}
	closeDate, err := parseOptionalTimestamp(opp.CloseDate)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("opportunity %s: closeDate: %w", opp.ID, err)
	}
	updatedAt, err := parseOptionalTimestamp(opp.UpdatedAt)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("opportunity %s: updatedAt: %w", opp.ID, err)
	}

	result := domain.Opportunity{
		ID:             opp.ID,
		Name:           opp.Name,
		Stage:          domain.Stage(opp.Stage),
		CloseDate:      closeDate,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		Responsible:    mapApiResponsibleToDomain(opp.Responsible),
		PointOfContact: mapApiContactToDomain(opp.PointOfContact),
	}
	if opp.Source != nil {
		result.Source = domain.Source(*opp.Source)
	}
	if opp.Amount != nil {
		result.Amount = &domain.Amount{
			AmountMicros: opp.Amount.AmountMicros,
			CurrencyCode: opp.Amount.CurrencyCode,
		}
	}
	if opp.CreatedBy != nil {
		result.CreatedBy = &domain.Actor{
			Source: opp.CreatedBy.Source,
			Name:   opp.CreatedBy.Name,
		}
		if opp.CreatedBy.WorkspaceMemberID != nil {
			result.CreatedBy.WorkspaceMemberID = *opp.CreatedBy.WorkspaceMemberID
		}
	}
	return result, nil
}

func MapApiOpportunitiesToDomain(opps []api.Opportunity) ([]domain.Opportunity, error) {
	result := make([]domain.Opportunity, 0, len(opps))
	for _, opp := range opps {
		mapped, err := MapApiOpportunityToDomain(opp)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}

// mapApiResponsibleToDomain prefers the flat shape and falls back to the nested one.
func mapApiResponsibleToDomain(r *api.Responsible) *domain.Emails {
	if r == nil {
		return nil
	}
	if r.PrimaryEmail != "" {
		return &domain.Emails{PrimaryEmail: r.PrimaryEmail, AdditionalEmails: r.AdditionalEmails}
	}
	if r.Emails != nil {
		return &domain.Emails{PrimaryEmail: r.Emails.PrimaryEmail, AdditionalEmails: r.Emails.AdditionalEmails}
	}
	return nil
}

func mapApiContactToDomain(c *api.Contact) *domain.Contact {
	if c == nil {
		return nil
	}
	contact := &domain.Contact{ID: c.ID}
	if c.Emails != nil {
		contact.Emails = &domain.Emails{PrimaryEmail: c.Emails.PrimaryEmail, AdditionalEmails: c.Emails.AdditionalEmails}
	}
	if c.Name != nil {
		contact.Name = &domain.PersonName{FirstName: c.Name.FirstName, LastName: c.Name.LastName}
	}
	return contact
}

func MapDomainOpportunityToApi(opp domain.Opportunity) api.Opportunity {
	result := api.Opportunity{
		ID:        opp.ID,
		Name:      opp.Name,
		Stage:     string(opp.Stage),
		CloseDate: formatOptionalTimestamp(opp.CloseDate),
		CreatedAt: opp.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: formatOptionalTimestamp(opp.UpdatedAt),
	}
	if opp.Source != "" {
		source := string(opp.Source)
		result.Source = &source
	}
	if opp.Amount != nil {
		result.Amount = &api.Amount{AmountMicros: opp.Amount.AmountMicros, CurrencyCode: opp.Amount.CurrencyCode}
	}
	if opp.CreatedBy != nil {
		result.CreatedBy = &api.Actor{Source: opp.CreatedBy.Source, Name: opp.CreatedBy.Name}
		if opp.CreatedBy.WorkspaceMemberID != "" {
			id := opp.CreatedBy.WorkspaceMemberID
			result.CreatedBy.WorkspaceMemberID = &id
		}
	}
	if opp.Responsible != nil {
		result.Responsible = &api.Responsible{
			PrimaryEmail:     opp.Responsible.PrimaryEmail,
			AdditionalEmails: opp.Responsible.AdditionalEmails,
		}
	}
	if c := opp.PointOfContact; c != nil {
		contact := &api.Contact{ID: c.ID}
		if c.Emails != nil {
			contact.Emails = &api.Emails{PrimaryEmail: c.Emails.PrimaryEmail, AdditionalEmails: c.Emails.AdditionalEmails}
		}
		if c.Name != nil {
			contact.Name = &api.PersonName{FirstName: c.Name.FirstName, LastName: c.Name.LastName}
		}
		result.PointOfContact = contact
		if c.ID != "" {
			id := c.ID
			result.PointOfContactID = &id
		}
	}
	return result
}

func formatStoredTimestamp(t time.Time) string {
	return t.UTC().Format(store.TimestampLayout)
}

func nullString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func MapStoreOpportunityToDomain(row store.Opportunity) (domain.Opportunity, error) {
	createdAt, err := ParseTimestamp(row.CreatedAt)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("opportunity %s: created_at: %w", row.ID, err)
	}

	closeDate, err := parseOptionalTimestamp(&row.CloseDate.String)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("opportunity %s: close_date: %w", row.ID, err)
	}
	updatedAt, err := parseOptionalTimestamp(&row.UpdatedAt.String)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("opportunity %s: updated_at: %w", row.ID, err)
	}

	opp := domain.Opportunity{
		ID:        row.ID,
		Name:      row.Name,
		Stage:     domain.Stage(row.Stage),
		Source:    domain.Source(nullString(row.Source)),
		CreatedAt: createdAt,
		CloseDate: closeDate,
		UpdatedAt: updatedAt,
	}
	if row.AmountMicros.Valid {
		opp.Amount = &domain.Amount{
			AmountMicros: row.AmountMicros.Int64,
			CurrencyCode: nullString(row.CurrencyCode),
		}
	}
	if row.ResponsibleEmail.Valid {
		opp.Responsible = &domain.Emails{PrimaryEmail: row.ResponsibleEmail.String}
	}
	if row.ContactID.Valid || row.ContactEmail.Valid {
		opp.PointOfContact = &domain.Contact{ID: nullString(row.ContactID)}
		if row.ContactEmail.Valid {
			opp.PointOfContact.Emails = &domain.Emails{PrimaryEmail: row.ContactEmail.String}
		}
		if row.ContactFirstName.Valid || row.ContactLastName.Valid {
			opp.PointOfContact.Name = &domain.PersonName{
				FirstName: nullString(row.ContactFirstName),
				LastName:  nullString(row.ContactLastName),
			}
		}
	}
	if row.CreatedByName.Valid || row.CreatedBySource.Valid {
		opp.CreatedBy = &domain.Actor{
			Source:            nullString(row.CreatedBySource),
			WorkspaceMemberID: nullString(row.CreatedByMemberID),
			Name:              nullString(row.CreatedByName),
		}
	}
	return opp, nil
}

func MapDomainOpportunityToStore(opp domain.Opportunity) store.Opportunity {
	row := store.Opportunity{
		ID:        opp.ID,
		Name:      opp.Name,
		Stage:     string(opp.Stage),
		Source:    toNullString(string(opp.Source)),
		CreatedAt: formatStoredTimestamp(opp.CreatedAt),
	}
	if opp.Amount != nil {
		row.AmountMicros = sql.NullInt64{Int64: opp.Amount.AmountMicros, Valid: true}
		row.CurrencyCode = toNullString(opp.Amount.CurrencyCode)
	}
	if opp.CloseDate != nil {
		row.CloseDate = toNullString(formatStoredTimestamp(*opp.CloseDate))
	}
	if opp.UpdatedAt != nil {
		row.UpdatedAt = toNullString(formatStoredTimestamp(*opp.UpdatedAt))
	}
	if opp.Responsible != nil {
		row.ResponsibleEmail = toNullString(opp.Responsible.PrimaryEmail)
	}
	if c := opp.PointOfContact; c != nil {
		row.ContactID = toNullString(c.ID)
		if c.Emails != nil {
			row.ContactEmail = toNullString(c.Emails.PrimaryEmail)
		}
		if c.Name != nil {
			row.ContactFirstName = toNullString(c.Name.FirstName)
			row.ContactLastName = toNullString(c.Name.LastName)
		}
	}
	if opp.CreatedBy != nil {
		row.CreatedByName = toNullString(opp.CreatedBy.Name)
		row.CreatedBySource = toNullString(opp.CreatedBy.Source)
		row.CreatedByMemberID = toNullString(opp.CreatedBy.WorkspaceMemberID)
	}
	return row
}
