package types

import (
	"regexp"
	"slices"

	"github.com/mesh-intelligence/scaffold/pkg/defaults"
)

// emailPattern matches the structural shape of an email address: a local
// part, an @, and a dotted domain. It checks shape only, not
// deliverability; a bare hostname with no dot does not match.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+` +
		`@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// EmailAddress is an email address attached to an entity.
type EmailAddress struct {
	ID          string `json:"id"`
	CreatedDTM  int64  `json:"created_dtm"`
	ModifiedDTM int64  `json:"modified_dtm"`

	// Category describes the address use, e.g. "home", "work".
	Category string `json:"category"`

	// Address is the email address itself.
	Address string `json:"address"`
}

// NewEmailAddress returns an EmailAddress with a fresh id and creation
// timestamps.
func NewEmailAddress(category, address string) *EmailAddress {
	now := defaults.Now()
	return &EmailAddress{
		ID:          defaults.NewID(),
		CreatedDTM:  now,
		ModifiedDTM: now,
		Category:    category,
		Address:     address,
	}
}

// IsValid reports whether the address has the structural shape of an
// email address.
func (e *EmailAddress) IsValid() bool {
	return emailPattern.MatchString(e.Address)
}

// EmailAddresses is the id-keyed email collection contributed by the
// "email_addresses" capability.
type EmailAddresses map[string]*EmailAddress

// InsertEmailAddress constructs an EmailAddress with a fresh id, inserts
// it, and returns the id.
func (e *EmailAddresses) InsertEmailAddress(category, address string) string {
	if *e == nil {
		*e = make(EmailAddresses)
	}
	email := NewEmailAddress(category, address)
	(*e)[email.ID] = email
	return email.ID
}

// GetEmailAddress returns the email address with the given id, or nil
// when absent.
func (e EmailAddresses) GetEmailAddress(id string) *EmailAddress {
	return e[id]
}

// SearchEmailAddressesByCategory returns clones of the email addresses
// whose category equals category, ordered by id.
func (e EmailAddresses) SearchEmailAddressesByCategory(category string) []*EmailAddress {
	results := make([]*EmailAddress, 0)
	ids := make([]string, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if e[id].Category == category {
			clone := *e[id]
			results = append(results, &clone)
		}
	}
	return results
}

// RemoveEmailAddress deletes the email address with the given id. A no-op
// when the id is absent.
func (e EmailAddresses) RemoveEmailAddress(id string) {
	delete(e, id)
}
