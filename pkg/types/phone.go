package types

import (
	"slices"

	"github.com/mesh-intelligence/scaffold/pkg/defaults"
)

// PhoneNumber is a phone number attached to an entity.
type PhoneNumber struct {
	ID          string `json:"id"`
	CreatedDTM  int64  `json:"created_dtm"`
	ModifiedDTM int64  `json:"modified_dtm"`

	// Category describes the number use, e.g. "home", "work".
	Category string `json:"category"`

	// Number is the phone number digits.
	Number string `json:"number"`

	// CountryCode is the ISO alpha-3 code of the number's country.
	CountryCode string `json:"country_code"`
}

// NewPhoneNumber returns a PhoneNumber with a fresh id and creation
// timestamps.
func NewPhoneNumber(category, number, countryCode string) *PhoneNumber {
	now := defaults.Now()
	return &PhoneNumber{
		ID:          defaults.NewID(),
		CreatedDTM:  now,
		ModifiedDTM: now,
		Category:    category,
		Number:      number,
		CountryCode: countryCode,
	}
}

// PhoneNumbers is the id-keyed phone collection contributed by the
// "phone_numbers" capability.
type PhoneNumbers map[string]*PhoneNumber

// InsertPhoneNumber constructs a PhoneNumber with a fresh id, inserts it,
// and returns the id.
func (p *PhoneNumbers) InsertPhoneNumber(category, number, countryCode string) string {
	if *p == nil {
		*p = make(PhoneNumbers)
	}
	phone := NewPhoneNumber(category, number, countryCode)
	(*p)[phone.ID] = phone
	return phone.ID
}

// GetPhoneNumber returns the phone number with the given id, or nil when
// absent.
func (p PhoneNumbers) GetPhoneNumber(id string) *PhoneNumber {
	return p[id]
}

// SearchPhoneNumbersByCategory returns clones of the phone numbers whose
// category equals category, ordered by id.
func (p PhoneNumbers) SearchPhoneNumbersByCategory(category string) []*PhoneNumber {
	results := make([]*PhoneNumber, 0)
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if p[id].Category == category {
			clone := *p[id]
			results = append(results, &clone)
		}
	}
	return results
}

// RemovePhoneNumber deletes the phone number with the given id. A no-op
// when the id is absent.
func (p PhoneNumbers) RemovePhoneNumber(id string) {
	delete(p, id)
}
