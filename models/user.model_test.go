package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func intPtr(v int) *int { return &v }

func validUser() *User {
	return &User{
		Email:        "someone@example.com",
		Password:     "secret123",
		MobileNumber: "9876543210",
	}
}

func TestValidateAcceptsEmptyOptionalFields(t *testing.T) {
	assert.NoError(t, validUser().Validate())
}

func TestValidateEnumFields(t *testing.T) {
	u := validUser()
	u.MaritalStatus = "neverMarried"
	u.PhysicalState = "athletic"
	u.EatingHabits = "vegetarian"
	u.SmokingHabits = "occasionally"
	u.Religion = "hindu"
	u.MotherTongue = "telugu"
	u.Caste = "general"
	u.Subcaste = "brahmin"
	u.Gotram = "bharadwaja"
	u.Raasi = "simha"
	u.Star = "rohini"
	assert.NoError(t, u.Validate())

	u = validUser()
	u.MaritalStatus = "single"
	err := u.Validate()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "maritalStatus", vErr.Field)

	u = validUser()
	u.Religion = "jedi"
	assert.Error(t, u.Validate())

	u = validUser()
	u.FatherEmployee = "maybe"
	assert.Error(t, u.Validate())
}

func TestValidateLanguagesKnown(t *testing.T) {
	u := validUser()
	u.LanguagesKnown = datatypes.JSONSlice[string]{"Hindi", "Telugu"}
	assert.NoError(t, u.Validate())

	u.LanguagesKnown = datatypes.JSONSlice[string]{"Hindi", "Klingon"}
	err := u.Validate()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "languagesKnown", vErr.Field)
}

func TestValidateNumericRanges(t *testing.T) {
	u := validUser()
	u.Weight = intPtr(70)
	u.MaleKids = intPtr(0)
	u.FemaleKids = intPtr(10)
	assert.NoError(t, u.Validate())

	u = validUser()
	u.Weight = intPtr(20)
	assert.Error(t, u.Validate())

	u = validUser()
	u.Weight = intPtr(201)
	assert.Error(t, u.Validate())

	u = validUser()
	u.MaleKids = intPtr(11)
	assert.Error(t, u.Validate())

	u = validUser()
	u.TotalSisters = intPtr(-1)
	assert.Error(t, u.Validate())
}

func TestValidateFatherOccupiedRequirement(t *testing.T) {
	u := validUser()
	u.FatherEmployee = "yes"
	err := u.Validate()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "fatherOccupied", vErr.Field)

	u.FatherOccupied = "retired"
	assert.NoError(t, u.Validate())

	// Not required when the father is not employed
	u = validUser()
	u.FatherEmployee = "no"
	assert.NoError(t, u.Validate())
}

func TestValidateMotherOccupiedRequirement(t *testing.T) {
	u := validUser()
	u.MotherEmployee = "yes"
	assert.Error(t, u.Validate())

	u.MotherOccupied = "part-time"
	assert.NoError(t, u.Validate())

	u = validUser()
	u.MotherEmployee = "no"
	assert.NoError(t, u.Validate())
}

func TestValidateMarriedBrothersRequirement(t *testing.T) {
	u := validUser()
	u.TotalBrothers = intPtr(2)
	err := u.Validate()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "marriedBrothers", vErr.Field)

	u.MarriedBrothers = intPtr(0)
	assert.NoError(t, u.Validate())

	// Zero brothers means no married-brothers requirement
	u = validUser()
	u.TotalBrothers = intPtr(0)
	assert.NoError(t, u.Validate())
}

func TestValidateMarriedSistersRequirement(t *testing.T) {
	u := validUser()
	u.TotalSisters = intPtr(1)
	assert.Error(t, u.Validate())

	u.MarriedSisters = intPtr(1)
	assert.NoError(t, u.Validate())

	u = validUser()
	u.TotalSisters = intPtr(0)
	assert.NoError(t, u.Validate())
}
