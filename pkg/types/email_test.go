package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailAddressIsValid(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "plain address", address: "myemail@example.com", want: true},
		{name: "dotted local part", address: "first.last@example.com", want: true},
		{name: "plus tag", address: "me+tag@example.co.uk", want: true},
		{name: "missing top level domain", address: "myemail@example", want: false},
		{name: "missing at sign", address: "myemail.example.com", want: false},
		{name: "missing local part", address: "@example.com", want: false},
		{name: "empty", address: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := NewEmailAddress("home", tt.address)
			assert.Equal(t, tt.want, email.IsValid())
		})
	}
}

func TestEmailAddressesInsertAndGet(t *testing.T) {
	var emails EmailAddresses
	id := emails.InsertEmailAddress("home", "myemail@example.com")
	emails.InsertEmailAddress("work", "myemail@example.com")
	emails.InsertEmailAddress("other", "myemail@example.com")

	assert.Len(t, emails, 3)

	email := emails.GetEmailAddress(id)
	require.NotNil(t, email)
	assert.Equal(t, "home", email.Category)
	assert.Equal(t, "myemail@example.com", email.Address)

	assert.Nil(t, emails.GetEmailAddress("1234"))
}

func TestEmailAddressesSearchByCategory(t *testing.T) {
	var emails EmailAddresses
	emails.InsertEmailAddress("home", "one@example.com")
	emails.InsertEmailAddress("work", "two@example.com")
	emails.InsertEmailAddress("home", "three@example.com")

	home := emails.SearchEmailAddressesByCategory("home")
	require.Len(t, home, 2)
	for _, email := range home {
		assert.Equal(t, "home", email.Category)
	}

	assert.Empty(t, emails.SearchEmailAddressesByCategory("vacation"))
}

func TestEmailAddressesRemove(t *testing.T) {
	var emails EmailAddresses
	id := emails.InsertEmailAddress("home", "one@example.com")
	emails.InsertEmailAddress("work", "two@example.com")

	emails.RemoveEmailAddress(id)
	assert.Len(t, emails, 1)

	// Unknown id is a silent no-op.
	emails.RemoveEmailAddress("1234")
	assert.Len(t, emails, 1)
}
