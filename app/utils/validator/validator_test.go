package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid password", password: "Str0ng!pass", valid: true},
		{name: "minimum length", password: "Abcdef!8", valid: true},
		{name: "too short", password: "Ab!4567", valid: false},
		{name: "too long", password: "Abcdefgh!1234567X", valid: false},
		{name: "missing uppercase", password: "str0ng!pass", valid: false},
		{name: "missing special character", password: "Str0ngPass1", valid: false},
		{name: "empty", password: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPassword(tt.password))
		})
	}
}

func TestRoleRule(t *testing.T) {
	v := New()

	for _, role := range []string{"ADMIN", "OWNER", "USER"} {
		assert.NoError(t, v.ValidateVar(role, "user_role"), role)
	}

	for _, role := range []string{"admin", "SUPERVISOR", ""} {
		assert.Error(t, v.ValidateVar(role, "user_role"), role)
	}
}

func TestRatingValueRule(t *testing.T) {
	v := New()

	for _, value := range []int{1, 2, 3, 4, 5} {
		assert.NoError(t, v.ValidateVar(value, "rating_value"))
	}

	for _, value := range []int{0, 6, -1, 100} {
		assert.Error(t, v.ValidateVar(value, "rating_value"))
	}
}

func TestStructValidation(t *testing.T) {
	type signUpForm struct {
		Name     string `json:"name" validate:"required,min=20,max=60"`
		Email    string `json:"email" validate:"required,email"`
		Address  string `json:"address" validate:"max=400"`
		Password string `json:"password" validate:"required,password"`
	}

	v := New()

	valid := signUpForm{
		Name:     "A Perfectly Valid Account Name",
		Email:    "a@x.com",
		Address:  "42 Example Road",
		Password: "Str0ng!pass",
	}
	assert.NoError(t, v.Validate(valid))

	shortName := valid
	shortName.Name = "Too Short"
	err := v.Validate(shortName)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, v.Validate(badEmail))

	longAddress := valid
	for len(longAddress.Address) <= 400 {
		longAddress.Address += "xxxxxxxxxx"
	}
	assert.Error(t, v.Validate(longAddress))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail(""))
}
