package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"contact-service/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validContact() ContactMessageInput {
	return ContactMessageInput{
		Name:    "Jo Lee",
		Email:   "jo@example.com",
		Message: "Please send me more info about your products.",
	}
}

func TestNewContactMessage(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	msg, err := NewContactMessage(validContact(), now)
	require.NoError(t, err)

	assert.Equal(t, "Jo Lee", msg.Name)
	assert.Equal(t, "jo@example.com", msg.Email)
	assert.Equal(t, SourceContact, msg.Source)
	assert.Nil(t, msg.Phone)
	assert.Nil(t, msg.Company)
	assert.True(t, msg.ID.IsZero())
	assert.Equal(t, time.UTC, msg.CreatedAt.Location())
	assert.True(t, msg.CreatedAt.Equal(now))
}

func TestNewContactMessageKeepsSource(t *testing.T) {
	in := validContact()
	in.Source = strPtr("newsletter")
	in.Phone = strPtr("+370 600 00000")

	msg, err := NewContactMessage(in, time.Now())
	require.NoError(t, err)
	assert.Equal(t, Source("newsletter"), msg.Source)
	require.NotNil(t, msg.Phone)
	assert.Equal(t, "+370 600 00000", *msg.Phone)
}

func TestNewContactMessageMessageBoundary(t *testing.T) {
	in := validContact()

	in.Message = strings.Repeat("a", 9)
	_, err := NewContactMessage(in, time.Now())
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("message"))

	in.Message = strings.Repeat("a", 10)
	_, err = NewContactMessage(in, time.Now())
	require.NoError(t, err)

	in.Message = strings.Repeat("a", 5000)
	_, err = NewContactMessage(in, time.Now())
	require.NoError(t, err)

	in.Message = strings.Repeat("a", 5001)
	_, err = NewContactMessage(in, time.Now())
	require.Error(t, err)
}

func TestNewContactMessageRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactMessageInput)
		field  string
	}{
		{"missing name", func(in *ContactMessageInput) { in.Name = "" }, "name"},
		{"short name", func(in *ContactMessageInput) { in.Name = "J" }, "name"},
		{"long name", func(in *ContactMessageInput) { in.Name = strings.Repeat("n", 101) }, "name"},
		{"missing email", func(in *ContactMessageInput) { in.Email = "" }, "email"},
		{"bad email", func(in *ContactMessageInput) { in.Email = "not-an-email" }, "email"},
		{"long phone", func(in *ContactMessageInput) { in.Phone = strPtr(strings.Repeat("1", 51)) }, "phone"},
		{"long company", func(in *ContactMessageInput) { in.Company = strPtr(strings.Repeat("c", 121)) }, "company"},
		{"missing message", func(in *ContactMessageInput) { in.Message = "" }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContact()
			tt.mutate(&in)

			_, err := NewContactMessage(in, time.Now())

			var verr *validation.Error
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.True(t, verr.Has(tt.field), "expected %s in %v", tt.field, verr.Fields)
		})
	}
}
