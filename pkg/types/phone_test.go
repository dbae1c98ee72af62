package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneNumbersInsertAndGet(t *testing.T) {
	var phones PhoneNumbers
	id := phones.InsertPhoneNumber("home", "8482493561", "USA")
	phones.InsertPhoneNumber("work", "2223330000", "USA")
	phones.InsertPhoneNumber("other", "7776664444", "USA")

	assert.Len(t, phones, 3)

	phone := phones.GetPhoneNumber(id)
	require.NotNil(t, phone)
	assert.Equal(t, "home", phone.Category)
	assert.Equal(t, "8482493561", phone.Number)
	assert.Equal(t, "USA", phone.CountryCode)
	assert.Equal(t, phone.CreatedDTM, phone.ModifiedDTM)

	assert.Nil(t, phones.GetPhoneNumber("1234"))
}

func TestPhoneNumbersSearchByCategory(t *testing.T) {
	var phones PhoneNumbers
	phones.InsertPhoneNumber("home", "8482493561", "USA")
	phones.InsertPhoneNumber("work", "2223330000", "USA")
	phones.InsertPhoneNumber("home", "7776664444", "USA")

	home := phones.SearchPhoneNumbersByCategory("home")
	require.Len(t, home, 2)
	for _, phone := range home {
		assert.Equal(t, "home", phone.Category)
	}

	assert.Empty(t, phones.SearchPhoneNumbersByCategory("fax"))
}

func TestPhoneNumbersRemove(t *testing.T) {
	var phones PhoneNumbers
	id := phones.InsertPhoneNumber("home", "8482493561", "USA")
	phones.InsertPhoneNumber("work", "2223330000", "USA")

	phones.RemovePhoneNumber(id)
	assert.Len(t, phones, 1)

	// Unknown id is a silent no-op.
	phones.RemovePhoneNumber("1234")
	assert.Len(t, phones, 1)
}
