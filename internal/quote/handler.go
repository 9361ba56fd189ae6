package quote

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travelquote/pkg/logger"
)

type QuoteHandler struct {
	service *Service
	logger  logger.Logger
}

func NewQuoteHandler(s *Service, log logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: s,
		logger:  log,
	}
}

func (h *QuoteHandler) RegisterRoutes(router gin.IRouter) {
	quotes := router.Group("/v1/quotes")
	{
		quotes.POST("/evaluate", h.EvaluateHandler)
		quotes.POST("/score", h.ScoreHandler)
		quotes.POST("/conflicts", h.ConflictsHandler)
		quotes.GET("/:quote_id/scores", h.ScoreHistoryHandler)
	}

	workspaces := router.Group("/v1/workspaces")
	{
		workspaces.POST("", h.OpenWorkspaceHandler)
		workspaces.PUT("/:id/itinerary", h.UpdateWorkspaceHandler)
		workspaces.GET("/:id/suggestions", h.SuggestionsHandler)
		workspaces.POST("/:id/suggestions/toggle", h.ToggleHandler)
		workspaces.POST("/:id/suggestions/reset", h.ResetHandler)
		workspaces.POST("/:id/suggestions/:suggestion_id/accept", h.AcceptHandler)
		workspaces.POST("/:id/suggestions/:suggestion_id/dismiss", h.DismissHandler)
		workspaces.POST("/:id/suggestions/:suggestion_id/snooze", h.SnoozeHandler)
		workspaces.DELETE("/:id", h.CloseWorkspaceHandler)
	}
}

// EvaluateHandler godoc
// @Summary      Evaluate an itinerary
// @Description  Detect conflicts, rank bundle suggestions and score the quote in one call
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body QuoteRequest true "Itinerary and trip metadata"
// @Success      200 {object} Evaluation
// @Failure      400 {object} AppError
// @Router       /v1/quotes/evaluate [post]
func (h *QuoteHandler) EvaluateHandler(c *gin.Context) {
	var req QuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.service.Evaluate(c.Request.Context(), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ScoreHandler godoc
// @Summary      Score a quote
// @Description  Weighted quality score with letter grade; stores a snapshot when quote_id is set
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body QuoteRequest true "Itinerary, trip metadata and optional pricing"
// @Success      200 {object} scoring.QuoteScore
// @Failure      400 {object} AppError
// @Router       /v1/quotes/score [post]
func (h *QuoteHandler) ScoreHandler(c *gin.Context) {
	var req QuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.service.Score(c.Request.Context(), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ConflictsHandler godoc
// @Summary      Detect schedule conflicts
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body ConflictsRequest true "Itinerary items"
// @Success      200 {object} ConflictsResponse
// @Failure      400 {object} AppError
// @Router       /v1/quotes/conflicts [post]
func (h *QuoteHandler) ConflictsHandler(c *gin.Context) {
	var req ConflictsRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.service.Conflicts(c.Request.Context(), req.Items)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ScoreHistoryHandler godoc
// @Summary      Score history of a quote
// @Tags         quotes
// @Produce      json
// @Param        quote_id path string true "Quote id"
// @Param        limit query int false "Maximum snapshots (default 20, max 100)"
// @Success      200 {object} ScoreHistoryResponse
// @Failure      400 {object} AppError
// @Failure      503 {object} AppError
// @Router       /v1/quotes/{quote_id}/scores [get]
func (h *QuoteHandler) ScoreHistoryHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.sendError(c, validationError("limit must be an integer"))
			return
		}
		limit = n
	}

	response, err := h.service.ScoreHistory(c.Request.Context(), c.Param("quote_id"), limit)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// OpenWorkspaceHandler godoc
// @Summary      Open a workspace session
// @Tags         workspaces
// @Produce      json
// @Success      201 {object} WorkspaceView
// @Router       /v1/workspaces [post]
func (h *QuoteHandler) OpenWorkspaceHandler(c *gin.Context) {
	response, err := h.service.OpenWorkspace(c.Request.Context())
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateWorkspaceHandler godoc
// @Summary      Replace the workspace itinerary
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace id"
// @Param        request body WorkspaceRequest true "Itinerary and trip metadata"
// @Success      200 {object} WorkspaceView
// @Failure      400 {object} AppError
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id}/itinerary [put]
func (h *QuoteHandler) UpdateWorkspaceHandler(c *gin.Context) {
	var req WorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.service.UpdateWorkspace(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SuggestionsHandler godoc
// @Summary      Visible bundle suggestions
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace id"
// @Success      200 {object} WorkspaceView
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id}/suggestions [get]
func (h *QuoteHandler) SuggestionsHandler(c *gin.Context) {
	response, err := h.service.WorkspaceSuggestions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// AcceptHandler godoc
// @Summary      Accept a suggestion
// @Description  Hides the suggestion for the rest of the session; navigate_to names the product tab to open
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace id"
// @Param        suggestion_id path string true "Suggestion id"
// @Success      200 {object} AcceptResponse
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id}/suggestions/{suggestion_id}/accept [post]
func (h *QuoteHandler) AcceptHandler(c *gin.Context) {
	response, err := h.service.Accept(c.Request.Context(), c.Param("id"), c.Param("suggestion_id"))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DismissHandler godoc
// @Summary      Dismiss a suggestion until reset
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace id"
// @Param        suggestion_id path string true "Suggestion id"
// @Success      200 {object} WorkspaceView
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id}/suggestions/{suggestion_id}/dismiss [post]
func (h *QuoteHandler) DismissHandler(c *gin.Context) {
	response, err := h.service.Dismiss(c.Request.Context(), c.Param("id"), c.Param("suggestion_id"))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SnoozeHandler godoc
// @Summary      Snooze a suggestion
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace id"
// @Param        suggestion_id path string true "Suggestion id"
// @Param        request body SnoozeRequest false "Delay in seconds"
// @Success      200 {object} WorkspaceView
// @Failure      400 {object} AppError
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id}/suggestions/{suggestion_id}/snooze [post]
func (h *QuoteHandler) SnoozeHandler(c *gin.Context) {
	var req SnoozeRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	if req.Seconds < 0 || req.Seconds > int(maxSnooze/time.Second) {
		h.sendError(c, validationError("seconds must be between 0 and %d", int(maxSnooze/time.Second)))
		return
	}

	delay := time.Duration(req.Seconds) * time.Second
	response, err := h.service.Snooze(c.Request.Context(), c.Param("id"), c.Param("suggestion_id"), delay)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ToggleHandler godoc
// @Summary      Turn suggestions on or off
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace id"
// @Success      200 {object} WorkspaceView
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id}/suggestions/toggle [post]
func (h *QuoteHandler) ToggleHandler(c *gin.Context) {
	response, err := h.service.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResetHandler godoc
// @Summary      Forget accepted and dismissed suggestions
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace id"
// @Success      200 {object} WorkspaceView
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id}/suggestions/reset [post]
func (h *QuoteHandler) ResetHandler(c *gin.Context) {
	response, err := h.service.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CloseWorkspaceHandler godoc
// @Summary      Close a workspace session
// @Tags         workspaces
// @Param        id path string true "Workspace id"
// @Success      204
// @Failure      404 {object} AppError
// @Router       /v1/workspaces/{id} [delete]
func (h *QuoteHandler) CloseWorkspaceHandler(c *gin.Context) {
	if err := h.service.CloseWorkspace(c.Request.Context(), c.Param("id")); err != nil {
		h.sendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be absent.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("Invalid request format: %v", err),
		"code":  ErrorCodeValidation,
	})
	return false
}

func (h *QuoteHandler) sendError(c *gin.Context, err error) {
	if appErr := asAppError(err); appErr != nil {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	h.logger.Error("request failed",
		logger.Err(err),
		logger.Field{Key: "path", Value: c.FullPath()},
	)

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
		"code":  ErrorCodeInternalFailure,
	})
}
