package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"monarch-web/internal/domain"
	"monarch-web/pkg/logger"
	"monarch-web/pkg/security"
	"monarch-web/pkg/webhook"
)

// isoMillis matches the ISO-8601 form browsers produce for Date.toISOString
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type contactUsecase struct {
	webhook  webhook.Client
	audit    *security.SecurityLogger
	source   string
	now      func() time.Time
	inFlight sync.Map
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(client webhook.Client, audit *security.SecurityLogger, source string) domain.ContactUsecase {
	return newContactUsecase(client, audit, source, time.Now)
}

func newContactUsecase(client webhook.Client, audit *security.SecurityLogger, source string, now func() time.Time) *contactUsecase {
	return &contactUsecase{
		webhook: client,
		audit:   audit,
		source:  source,
		now:     now,
	}
}

func (uc *contactUsecase) IsAvailable() bool {
	return uc.webhook.IsConfigured()
}

// Submit posts the form to the webhook exactly once. A second submit of the
// same form while the first is still in flight is rejected without a POST.
func (uc *contactUsecase) Submit(ctx context.Context, formID string, fields domain.ContactFormFields) (domain.ContactFormState, error) {
	// the form keeps what the visitor typed, only the delivered payload is trimmed
	raw := fields
	fields = trimFields(raw)
	failed := domain.ContactFormState{Fields: raw, Error: domain.ContactErrorMessage}

	if err := requireFields(fields); err != nil {
		return failed, err
	}

	if !uc.webhook.IsConfigured() {
		return failed, domain.ErrContactUnavailable
	}

	key := formID
	if key == "" {
		key = fingerprint(fields)
	}
	if _, busy := uc.inFlight.LoadOrStore(key, struct{}{}); busy {
		if uc.audit != nil {
			uc.audit.LogDuplicateSubmission(ctx, key)
		}
		// the first submit decides the outcome, leave the form as it is
		return domain.ContactFormState{Fields: raw}, domain.ErrSubmissionInFlight
	}
	defer uc.inFlight.Delete(key)

	submission := domain.ContactSubmission{
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Company:   fields.Company,
		Phone:     fields.Phone,
		Message:   fields.Message,
		Timestamp: uc.now().UTC().Format(isoMillis),
		Source:    uc.source,
	}

	if err := uc.webhook.PostJSON(ctx, submission); err != nil {
		logger.Log.Warn("contact webhook delivery failed", "error", err, "request_id", ctx.Value(domain.KeyRequestID))
		if uc.audit != nil {
			uc.audit.LogContactFailed(ctx, fields.Email, err)
		}
		return failed, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	if uc.audit != nil {
		uc.audit.LogContactDelivered(ctx, fields.Email)
	}
	return domain.ContactFormState{Submitted: true}, nil
}

func trimFields(f domain.ContactFormFields) domain.ContactFormFields {
	return domain.ContactFormFields{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Company:   strings.TrimSpace(f.Company),
		Phone:     strings.TrimSpace(f.Phone),
		Message:   strings.TrimSpace(f.Message),
	}
}

func requireFields(f domain.ContactFormFields) error {
	if f.FirstName == "" {
		return fmt.Errorf("%w: first name", domain.ErrMissingField)
	}
	if f.LastName == "" {
		return fmt.Errorf("%w: last name", domain.ErrMissingField)
	}
	if f.Email == "" {
		return fmt.Errorf("%w: email", domain.ErrMissingField)
	}
	if f.Message == "" {
		return fmt.Errorf("%w: message", domain.ErrMissingField)
	}
	return nil
}

// fingerprint identifies a form by its content when the client sent no id
func fingerprint(f domain.ContactFormFields) string {
	h := sha256.New()
	for _, v := range []string{f.FirstName, f.LastName, f.Email, f.Company, f.Phone, f.Message} {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
