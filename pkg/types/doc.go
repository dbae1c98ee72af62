// Package types defines the scaffolded entity base, the capability
// container types with their behavior methods, the sub-entity records
// (Address, EmailAddress, Note, PhoneNumber), standard error types, and
// the entity JSON serialization contract.
//
// An entity type embeds Entity plus zero or more capability containers:
//
//	type Person struct {
//		types.Entity
//		types.Notes `json:"notes"`
//		types.Tags  `json:"tags"`
//		Name string `json:"name"`
//	}
//
// The embedded methods give the entity its fixed operation set; the
// scaffold package fills the unset fields with catalog defaults.
package types
