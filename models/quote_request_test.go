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

func validQuote() QuoteRequestInput {
	return QuoteRequestInput{
		Name:        "Ana Petrova",
		Email:       "ana@example.com",
		ProductType: string(ProductVacbag),
		Quantity:    strPtr("2 pallets a month"),
	}
}

func TestNewQuoteRequest(t *testing.T) {
	q, err := NewQuoteRequest(validQuote(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, ProductVacbag, q.ProductType)
	require.NotNil(t, q.Quantity)
	assert.Equal(t, "2 pallets a month", *q.Quantity)
	assert.Nil(t, q.Details)
	assert.Nil(t, q.Country)
}

func TestNewQuoteRequestAcceptsUnknownProduct(t *testing.T) {
	in := validQuote()
	in.ProductType = "industrial-wrap"

	q, err := NewQuoteRequest(in, time.Now())
	require.NoError(t, err)
	assert.Equal(t, ProductType("industrial-wrap"), q.ProductType)
}

func TestNewQuoteRequestMissingProductType(t *testing.T) {
	in := validQuote()
	in.ProductType = ""

	_, err := NewQuoteRequest(in, time.Now())

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "product_type", verr.Fields[0].Field)
	assert.Equal(t, "required", verr.Fields[0].Constraint)
}

func TestNewQuoteRequestShortNameAndBadEmail(t *testing.T) {
	_, err := NewQuoteRequest(QuoteRequestInput{Name: "A", Email: "bad", ProductType: "vacbag"}, time.Now())

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("name"))
	assert.True(t, verr.Has("email"))
	assert.False(t, verr.Has("product_type"))
}

func TestNewQuoteRequestOptionalBounds(t *testing.T) {
	in := validQuote()
	in.Details = strPtr(strings.Repeat("d", 5000))
	in.Country = strPtr(strings.Repeat("c", 120))
	_, err := NewQuoteRequest(in, time.Now())
	require.NoError(t, err)

	in.Details = strPtr(strings.Repeat("d", 5001))
	in.Country = strPtr(strings.Repeat("c", 121))
	_, err = NewQuoteRequest(in, time.Now())

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("details"))
	assert.True(t, verr.Has("country"))
}
