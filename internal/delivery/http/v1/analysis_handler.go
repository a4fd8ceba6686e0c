package v1

import (
	"errors"
	"net/http"

	"monarch-web/internal/delivery/http/response"
	"monarch-web/internal/domain"
	"monarch-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisUC domain.AnalysisUsecase
}

func NewAnalysisHandler(public *gin.RouterGroup, analysisUC domain.AnalysisUsecase, limit gin.HandlerFunc) {
	handler := &AnalysisHandler{
		analysisUC: analysisUC,
	}

	public.POST("/analyze", limit, handler.Analyze)
}

// Analyze godoc
// @Summary      Analyze Website
// @Description  Returns a website analysis report after a short processing delay.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      domain.AnalyzeRequest  true  "Website URL"
// @Success      200      {object}  response.Response{data=domain.AnalysisReport}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	report, err := h.analysisUC.Analyze(c.Request.Context(), req.URL)
	if err != nil {
		c.Error(analysisError(err))
		return
	}

	response.Success(c, http.StatusOK, "Analysis complete", report)
}

func analysisError(err error) *apperror.AppError {
	if errors.Is(err, domain.ErrEmptyURL) {
		return apperror.BadRequest("Please enter a website URL.")
	}
	return apperror.New(http.StatusInternalServerError, domain.AnalysisErrorMessage, err)
}
