package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	AccountNumber string    `json:"account_number" validate:"required,account_number"`
	HolderName    string    `json:"holder_name" validate:"required,holder_name"`
	DateOpened    time.Time `json:"date_opened" validate:"not_future"`
	Pin           string    `json:"-" validate:"pin"`
}

func validFixture() accountFixture {
	return accountFixture{
		AccountNumber: "1012345678",
		HolderName:    "Ada Lovelace",
		DateOpened:    time.Now().AddDate(-1, 0, 0),
		Pin:           "1234",
	}
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidator_Struct_ValidInput(t *testing.T) {
	err := GetValidator().Struct(validFixture())
	assert.NoError(t, err)
}

func TestValidator_Struct_FieldFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*accountFixture)
		wantField string
		wantRule  string
	}{
		{
			name:      "account number too short",
			mutate:    func(f *accountFixture) { f.AccountNumber = "12345" },
			wantField: "account_number",
			wantRule:  "account_number",
		},
		{
			name:      "account number too long",
			mutate:    func(f *accountFixture) { f.AccountNumber = "10123456789" },
			wantField: "account_number",
			wantRule:  "account_number",
		},
		{
			name:      "account number missing",
			mutate:    func(f *accountFixture) { f.AccountNumber = "" },
			wantField: "account_number",
			wantRule:  "required",
		},
		{
			name:      "holder name single character",
			mutate:    func(f *accountFixture) { f.HolderName = "A" },
			wantField: "holder_name",
			wantRule:  "holder_name",
		},
		{
			name:      "holder name only whitespace",
			mutate:    func(f *accountFixture) { f.HolderName = "   " },
			wantField: "holder_name",
			wantRule:  "holder_name",
		},
		{
			name:      "date opened in the future",
			mutate:    func(f *accountFixture) { f.DateOpened = time.Now().Add(48 * time.Hour) },
			wantField: "date_opened",
			wantRule:  "not_future",
		},
		{
			name:      "pin too short",
			mutate:    func(f *accountFixture) { f.Pin = "123" },
			wantField: "Pin", // json:"-" falls back to the struct field name
			wantRule:  "pin",
		},
		{
			name:      "pin blank",
			mutate:    func(f *accountFixture) { f.Pin = "     " },
			wantField: "Pin",
			wantRule:  "pin",
		},
	}

	v := GetValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := validFixture()
			tt.mutate(&fixture)

			err := v.Struct(fixture)
			require.Error(t, err)

			fields := v.FieldErrors(err)
			rule, ok := fields[tt.wantField]
			require.True(t, ok, "expected a failure on field %q, got %v", tt.wantField, fields)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestValidator_FieldErrors_NonValidatorError(t *testing.T) {
	v := GetValidator()

	assert.Nil(t, v.FieldErrors(nil))
	assert.Nil(t, v.FieldErrors(assert.AnError))
}

func TestValidator_Struct_ReportsEveryFailedField(t *testing.T) {
	fixture := accountFixture{
		AccountNumber: "123",
		HolderName:    "X",
		DateOpened:    time.Now().Add(time.Hour),
		Pin:           "12",
	}

	v := GetValidator()
	fields := v.FieldErrors(v.Struct(fixture))

	assert.Len(t, fields, 4)
	assert.Contains(t, fields, "account_number")
	assert.Contains(t, fields, "holder_name")
	assert.Contains(t, fields, "date_opened")
	assert.Contains(t, fields, "Pin")
}

func TestValidator_NotFuture_AcceptsCurrentMoment(t *testing.T) {
	fixture := validFixture()
	fixture.DateOpened = time.Now().Add(-time.Second)

	assert.NoError(t, GetValidator().Struct(fixture))
}
