package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"monarch-web/internal/delivery/http/middleware"
	"monarch-web/internal/domain"
	"monarch-web/internal/web/components"
	"monarch-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	g "maragu.dev/gomponents"
)

// PageHandler serves the server-rendered pages and their no-script form posts
type PageHandler struct {
	contactUC  domain.ContactUsecase
	analysisUC domain.AnalysisUsecase
	page       components.PageConfig
}

func NewPageHandler(r *gin.Engine, contactUC domain.ContactUsecase, analysisUC domain.AnalysisUsecase, page components.PageConfig, contactLimit, analyzeLimit gin.HandlerFunc) {
	handler := &PageHandler{
		contactUC:  contactUC,
		analysisUC: analysisUC,
		page:       page,
	}

	r.GET("/", handler.Home)
	r.POST("/contact", contactLimit, handler.SubmitContact)
	r.GET("/services", handler.Services)
	r.POST("/services", analyzeLimit, handler.Analyze)
}

func (h *PageHandler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK, domain.ContactFormState{})
}

// SubmitContact handles the contact form when scripts are disabled and
// re-renders the page with the outcome.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		logValidationFailed(c, err)
		state := domain.ContactFormState{Fields: req.ContactFormFields, Error: domain.ContactErrorMessage}
		if details := validationMessages(err); len(details) > 0 {
			state.Error = strings.Join(details, " ")
		}
		h.renderHome(c, http.StatusBadRequest, state)
		return
	}

	state, err := h.contactUC.Submit(c.Request.Context(), req.FormID, req.ContactFormFields)
	if err != nil {
		appErr := contactError(err)
		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Warn("contact form submission failed", "error", err, "request_id", c.GetString("RequestID"))
		}
		if state.Error == "" {
			state.Error = appErr.Message
		}
		h.renderHome(c, appErr.Code, state)
		return
	}

	h.renderHome(c, http.StatusOK, state)
}

func (h *PageHandler) Services(c *gin.Context) {
	h.renderServices(c, http.StatusOK, components.AnalysisInput(middleware.CSRFToken(c), ""))
}

// Analyze runs the analysis for the services page form. An empty URL
// re-renders the input without starting the flow.
func (h *PageHandler) Analyze(c *gin.Context) {
	url := c.PostForm("url")

	report, err := h.analysisUC.Analyze(c.Request.Context(), url)
	switch {
	case errors.Is(err, domain.ErrEmptyURL):
		h.renderServices(c, http.StatusBadRequest, components.AnalysisInput(middleware.CSRFToken(c), ""))
	case errors.Is(err, context.Canceled):
		// client went away
		c.Status(499)
	case err != nil:
		logger.Log.Error("analysis failed", "error", err, "request_id", c.GetString("RequestID"))
		h.renderServices(c, http.StatusInternalServerError, components.AnalysisErrorView(domain.AnalysisErrorMessage))
	default:
		h.renderServices(c, http.StatusOK, components.ReportView(report, h.page.Embeds))
	}
}

func (h *PageHandler) renderHome(c *gin.Context, status int, state domain.ContactFormState) {
	view := components.ContactView{
		State:     state,
		FormID:    uuid.NewString(),
		CSRFToken: middleware.CSRFToken(c),
		Available: h.contactUC.IsAvailable(),
	}
	render(c, status, components.HomePage(h.page, view))
}

func (h *PageHandler) renderServices(c *gin.Context, status int, body g.Node) {
	page := h.page
	page.Title = ""
	page.URL = strings.TrimSuffix(h.page.URL, "/") + "/services"
	render(c, status, components.ServicesPage(page, body))
}

func render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		logger.Log.Error("failed to render page", "error", err, "path", c.Request.URL.Path)
	}
}
