package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicesmith/internal/domains/generation"
	"voicesmith/pkg/Logger"
)

// GenerationHandler handles synthesis history HTTP requests
type GenerationHandler struct {
	generationService generation.GenerationService
	logger            *Logger.Logger
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService generation.GenerationService, logger *Logger.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		logger:            logger,
	}
}

// ListGenerations handles listing synthesis history
// @Summary List generations
// @Description List synthesis history, filterable by user and voice
// @Tags Generations
// @Accept json
// @Produce json
// @Param user_id query string false "Filter by user"
// @Param voice_id query string false "Filter by voice"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (1-100, default 50)"
// @Success 200 {object} ListGenerationsResponse "Generations with pagination"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /generations [get]
func (h *GenerationHandler) ListGenerations(c *gin.Context) {
	var filters generation.ListGenerationsRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	generations, total, err := h.generationService.ListGenerations(c.Request.Context(), filters)
	if err != nil {
		h.logger.Errorf("list generations error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	if filters.Limit <= 0 {
		filters.Limit = 50
	}
	c.JSON(http.StatusOK, ListGenerationsResponse{
		Generations: generations,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: filters.Offset,
			Limit:  filters.Limit,
		},
	})
}
