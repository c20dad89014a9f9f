package models

import (
	"time"

	"contact-service/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ContactMessageCollection = "contactmessage"

// Source says which part of the site a contact message came from. The
// values below are the ones the site sends, but any string is accepted.
type Source string

const (
	SourceContact Source = "contact"
	SourceQuote   Source = "quote"
	SourceOther   Source = "other"
)

// ContactMessageInput is the POST /api/contact body.
type ContactMessageInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Company *string `json:"company" validate:"omitempty,max=120"`
	Message string  `json:"message" validate:"required,min=10,max=5000"`
	Source  *string `json:"source"`
}

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     *string            `json:"phone" bson:"phone"`
	Company   *string            `json:"company" bson:"company"`
	Message   string             `json:"message" bson:"message"`
	Source    Source             `json:"source" bson:"source"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// NewContactMessage validates in and builds the record to store. A missing
// or null source becomes SourceContact.
func NewContactMessage(in ContactMessageInput, now time.Time) (ContactMessage, error) {
	if err := validation.Struct(in); err != nil {
		return ContactMessage{}, err
	}

	source := SourceContact
	if in.Source != nil {
		source = Source(*in.Source)
	}

	return ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Message:   in.Message,
		Source:    source,
		CreatedAt: now.UTC(),
	}, nil
}
