package models

import (
	"time"

	"contact-service/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const QuoteRequestCollection = "quoterequest"

// ProductType is the product line a quote is requested for. Not enforced.
type ProductType string

const (
	ProductVacbag     ProductType = "vacbag"
	ProductDetergents ProductType = "detergents"
	ProductWhiteLabel ProductType = "white-label"
	ProductOther      ProductType = "other"
)

// QuoteRequestInput is the POST /api/quote body.
type QuoteRequestInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Company     *string `json:"company" validate:"omitempty,max=120"`
	ProductType string  `json:"product_type" validate:"required"`
	Quantity    *string `json:"quantity"`
	Details     *string `json:"details" validate:"omitempty,max=5000"`
	Country     *string `json:"country" validate:"omitempty,max=120"`
}

// QuoteRequest is a stored quote request.
type QuoteRequest struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Phone       *string            `json:"phone" bson:"phone"`
	Company     *string            `json:"company" bson:"company"`
	ProductType ProductType        `json:"product_type" bson:"product_type"`
	Quantity    *string            `json:"quantity" bson:"quantity"`
	Details     *string            `json:"details" bson:"details"`
	Country     *string            `json:"country" bson:"country"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// NewQuoteRequest validates in and builds the record to store.
func NewQuoteRequest(in QuoteRequestInput, now time.Time) (QuoteRequest, error) {
	if err := validation.Struct(in); err != nil {
		return QuoteRequest{}, err
	}

	return QuoteRequest{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		ProductType: ProductType(in.ProductType),
		Quantity:    in.Quantity,
		Details:     in.Details,
		Country:     in.Country,
		CreatedAt:   now.UTC(),
	}, nil
}
