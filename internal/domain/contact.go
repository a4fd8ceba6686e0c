package domain

import "context"

// ContactErrorMessage is shown to visitors whenever a submission fails.
const ContactErrorMessage = "Something went wrong. Please try again."

// ContactFormFields holds the values a visitor typed into the contact form.
// Required fields only have to be present; their content is passed on as typed.
type ContactFormFields struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required,not_blank,max=200"`
	LastName  string `json:"lastName" form:"lastName" binding:"required,not_blank,max=200"`
	Email     string `json:"email" form:"email" binding:"required,not_blank,max=320"`
	Company   string `json:"company" form:"company" binding:"max=200"`
	Phone     string `json:"phone" form:"phone" binding:"max=100"`
	Message   string `json:"message" form:"message" binding:"required,not_blank,max=5000"`
}

// IsEmpty reports whether every field is blank
func (f ContactFormFields) IsEmpty() bool {
	return f == ContactFormFields{}
}

// ContactRequest is the JSON body accepted by the contact endpoint
type ContactRequest struct {
	FormID string `json:"formId" form:"formId" binding:"omitempty,uuid"`
	ContactFormFields
}

// ContactSubmission is the payload posted to the contact webhook.
// Created on submit, sent once, then discarded.
type ContactSubmission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// ContactFormState is what the form shows after a submit attempt
type ContactFormState struct {
	Fields    ContactFormFields `json:"fields"`
	Submitted bool              `json:"submitted"`
	Error     string            `json:"error,omitempty"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the fields and posts them to the webhook exactly once
	Submit(ctx context.Context, formID string, fields ContactFormFields) (ContactFormState, error)
	// IsAvailable reports whether a webhook is configured
	IsAvailable() bool
}
