package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_TrimsAndRequires(t *testing.T) {
	u, err := NewUser("  Ann Lee ", " 123 ", " 0812 ")
	require.NoError(t, err)
	assert.Equal(t, User{FullName: "Ann Lee", StudentID: "123", Phone: "0812"}, u)

	_, err = NewUser(" ", "123", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeMissingField, ve.Code)
	assert.Equal(t, "full_name", ve.Ref)

	_, err = NewUser("Ann", "", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "student_id", ve.Ref)
}

func TestUser_Matches(t *testing.T) {
	u := User{FullName: "Ann Lee", StudentID: "6706", Phone: "0812"}
	assert.True(t, u.Matches(""))
	assert.True(t, u.Matches("lee"))
	assert.True(t, u.Matches("670"))
	assert.True(t, u.Matches("081"))
	assert.False(t, u.Matches("bob"))
}

func TestNewEquipment(t *testing.T) {
	e, err := NewEquipment(" Router ", "Network", 5, "")
	require.NoError(t, err)
	assert.Equal(t, EquipmentAvailable, e.Status)
	assert.Equal(t, "Router", e.Name)

	cases := []struct {
		name     string
		eqName   string
		category string
		qty      int
		status   EquipmentStatus
		code     string
	}{
		{"no name", "", "Network", 1, "", CodeMissingField},
		{"no category", "Router", " ", 1, "", CodeMissingField},
		{"negative", "Router", "Network", -1, "", CodeInvalidQuantity},
		{"bad status", "Router", "Network", 1, "BROKEN", CodeInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEquipment(tc.eqName, tc.category, tc.qty, tc.status)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.code, ve.Code)
		})
	}
}

func TestEquipment_Borrowable(t *testing.T) {
	assert.True(t, Equipment{Status: EquipmentAvailable, Quantity: 1}.Borrowable())
	assert.False(t, Equipment{Status: EquipmentAvailable, Quantity: 0}.Borrowable())
	assert.False(t, Equipment{Status: EquipmentMaintenance, Quantity: 3}.Borrowable())
}

func TestBorrow_Totals(t *testing.T) {
	b := Borrow{Details: []BorrowDetail{
		{EquipmentID: "e1", Amount: 3, ReturnedAmount: 1},
		{EquipmentID: "e2", Amount: 2, ReturnedAmount: 2},
	}}
	assert.Equal(t, 2, b.Outstanding())
	assert.False(t, b.FullyReturned())

	d, ok := b.Detail("e2")
	require.True(t, ok)
	assert.Zero(t, d.Remaining())
	_, ok = b.Detail("e3")
	assert.False(t, ok)

	b.Details[0].ReturnedAmount = 3
	assert.True(t, b.FullyReturned())
}

func TestBorrow_CloneIsIndependent(t *testing.T) {
	b := Borrow{ID: "b1", Details: []BorrowDetail{{EquipmentID: "e1", Amount: 2}}}
	c := b.Clone()
	c.Details[0].ReturnedAmount = 2
	assert.Zero(t, b.Details[0].ReturnedAmount)
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("borrow_date", "2025-01-31")
	require.NoError(t, err)

	_, err = ParseDate("borrow_date", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeMissingField, ve.Code)

	_, err = ParseDate("due_date", "31/01/2025")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeInvalidDate, ve.Code)
	assert.Equal(t, "due_date", ve.Ref)
}

func TestErrors_MatchSentinels(t *testing.T) {
	var err error = Invalid(CodeEmptyCart, "items", "pick at least one item")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))

	err = NotFound("borrow", "b1")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, `borrow "b1" not found`, err.Error())
}
