package v1

import (
	"errors"
	"net/http"

	"monarch-web/internal/delivery/http/response"
	"monarch-web/internal/domain"
	"monarch-web/pkg/apperror"
	"monarch-web/pkg/security"
	"monarch-web/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the JSON contact route
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Forward a contact form submission to the configured webhook. Each formId is delivered at most once at a time.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logValidationFailed(c, err)
		c.Error(bindError(err))
		return
	}

	state, err := h.contactUC.Submit(c.Request.Context(), req.FormID, req.ContactFormFields)
	if err != nil {
		c.Error(contactError(err))
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", state)
}

// contactError maps usecase failures onto HTTP errors. Delivery problems all
// surface with the same generic message.
func contactError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return apperror.New(http.StatusBadRequest, "Please fill in all required fields.", err)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return apperror.Conflict("Your message is already being sent.", err)
	case errors.Is(err, domain.ErrContactUnavailable):
		return apperror.ServiceUnavailable("Contact service temporarily unavailable", err)
	case errors.Is(err, domain.ErrDeliveryFailed):
		return apperror.BadGateway(domain.ContactErrorMessage, err)
	default:
		return apperror.Internal(err)
	}
}

func bindError(err error) *apperror.AppError {
	details := validationMessages(err)
	if len(details) == 0 {
		return apperror.BadRequest("Invalid request body")
	}
	return apperror.BadRequest("Validation failed").WithDetails(details)
}

// validationMessages returns field messages, or nil when err is a
// malformed body rather than failed validation
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	return validation.FormatValidationErrors(verrs)
}

func logValidationFailed(c *gin.Context, err error) {
	security.DefaultLogger().LogValidationFailed(
		c.Request.Context(),
		c.ClientIP(),
		c.GetString("RequestID"),
		c.FullPath(),
		validationMessages(err),
	)
}
