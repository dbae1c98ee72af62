// Package countries provides the packaged ISO country reference table:
// 240 records with name, international phone code, and ISO alpha-2 and
// alpha-3 codes. The table is decoded once on first use and never
// mutated afterwards, so it is safe to share across concurrent readers.
package countries

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed countries.json
var countriesJSON []byte

// Country is one record of the reference dataset.
type Country struct {
	// Name is the textual name of the country.
	Name string `json:"country_name"`

	// PhoneCode is the code used for international phone calls.
	PhoneCode string `json:"phone_code"`

	// ISO2Code is the two-character abbreviation.
	ISO2Code string `json:"iso_2_code"`

	// ISO3Code is the three-character abbreviation.
	ISO3Code string `json:"iso_3_code"`
}

// Countries is the read-only reference table.
type Countries struct {
	List []Country
}

var (
	loadOnce sync.Once
	loaded   *Countries
)

// Load returns the process-wide Countries table, decoding the packaged
// dataset on first call. The dataset is compiled into the binary, so a
// decode failure is a bug and panics.
func Load() *Countries {
	loadOnce.Do(func() {
		var list []Country
		if err := json.Unmarshal(countriesJSON, &list); err != nil {
			panic(fmt.Sprintf("countries: decode packaged dataset: %v", err))
		}
		loaded = &Countries{List: list}
	})
	return loaded
}

// ByISO2 returns a copy of the country with the given ISO alpha-2 code,
// or nil when absent. When duplicates exist the last match wins.
func (c *Countries) ByISO2(code string) *Country {
	return c.last(func(x Country) bool { return x.ISO2Code == code })
}

// ByISO3 returns a copy of the country with the given ISO alpha-3 code,
// or nil when absent. When duplicates exist the last match wins.
func (c *Countries) ByISO3(code string) *Country {
	return c.last(func(x Country) bool { return x.ISO3Code == code })
}

// ByPhoneCode returns a copy of the country with the given phone code,
// or nil when absent. When duplicates exist the last match wins.
func (c *Countries) ByPhoneCode(code string) *Country {
	return c.last(func(x Country) bool { return x.PhoneCode == code })
}

// IsValid reports whether the candidate matches a canonical record on
// every field.
func (c *Countries) IsValid(candidate Country) bool {
	for _, country := range c.List {
		if country == candidate {
			return true
		}
	}
	return false
}

// last scans the list and returns a copy of the last record that
// matches, or nil.
func (c *Countries) last(match func(Country) bool) *Country {
	var found *Country
	for i := range c.List {
		if match(c.List[i]) {
			country := c.List[i]
			found = &country
		}
	}
	return found
}
