package types

import (
	"slices"

	"github.com/mesh-intelligence/scaffold/pkg/defaults"
)

// Address is a postal address attached to an entity.
type Address struct {
	ID          string `json:"id"`
	CreatedDTM  int64  `json:"created_dtm"`
	ModifiedDTM int64  `json:"modified_dtm"`

	// Category describes the address use, e.g. "billing", "shipping", "home".
	Category string `json:"category"`

	// Line1 holds the location's full name.
	Line1 string `json:"line_1"`

	// Line2 holds the house number and street or PO box.
	Line2 string `json:"line_2"`

	// Line3 holds the city, region, and postal code.
	Line3 string `json:"line_3"`

	// Line4 holds the country.
	Line4 string `json:"line_4"`

	// CountryCode is the ISO alpha-3 code of the location.
	CountryCode string `json:"country_code"`
}

// NewAddress returns an Address with a fresh id and creation timestamps.
func NewAddress(category, line1, line2, line3, line4, countryCode string) *Address {
	now := defaults.Now()
	return &Address{
		ID:          defaults.NewID(),
		CreatedDTM:  now,
		ModifiedDTM: now,
		Category:    category,
		Line1:       line1,
		Line2:       line2,
		Line3:       line3,
		Line4:       line4,
		CountryCode: countryCode,
	}
}

// Addresses is the id-keyed address collection contributed by the
// "addresses" capability.
type Addresses map[string]*Address

// InsertAddress constructs an Address with a fresh id, inserts it, and
// returns the id.
func (a *Addresses) InsertAddress(category, line1, line2, line3, line4, countryCode string) string {
	if *a == nil {
		*a = make(Addresses)
	}
	addr := NewAddress(category, line1, line2, line3, line4, countryCode)
	(*a)[addr.ID] = addr
	return addr.ID
}

// GetAddress returns the address with the given id, or nil when absent.
func (a Addresses) GetAddress(id string) *Address {
	return a[id]
}

// ModifyAddress updates the address with the given id in place and bumps
// its ModifiedDTM. A no-op when the id is absent.
func (a Addresses) ModifyAddress(id, category, line1, line2, line3, line4, countryCode string) {
	addr, ok := a[id]
	if !ok {
		return
	}
	addr.Category = category
	addr.Line1 = line1
	addr.Line2 = line2
	addr.Line3 = line3
	addr.Line4 = line4
	addr.CountryCode = countryCode
	addr.ModifiedDTM = defaults.Now()
}

// SearchAddressesByCategory returns clones of the addresses whose category
// equals category, ordered by id.
func (a Addresses) SearchAddressesByCategory(category string) []*Address {
	results := make([]*Address, 0)
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if a[id].Category == category {
			clone := *a[id]
			results = append(results, &clone)
		}
	}
	return results
}

// RemoveAddress deletes the address with the given id. A no-op when the
// id is absent.
func (a Addresses) RemoveAddress(id string) {
	delete(a, id)
}
