package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicesmith/internal/domains/voice"
	"voicesmith/pkg/Logger"
)

// VoiceHandler handles voice-related HTTP requests
type VoiceHandler struct {
	voiceService voice.VoiceService
	logger       *Logger.Logger
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(voiceService voice.VoiceService, logger *Logger.Logger) *VoiceHandler {
	return &VoiceHandler{
		voiceService: voiceService,
		logger:       logger,
	}
}

// CreateVoice handles voice registration
// @Summary Create a voice record
// @Description Register a voice record directly, without the clone upload flow
// @Tags Voices
// @Accept json
// @Produce json
// @Param request body voice.CreateVoiceRequest true "Voice creation data"
// @Success 201 {object} CreateVoiceResponse "Voice created successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voices [post]
func (h *VoiceHandler) CreateVoice(c *gin.Context) {
	var req voice.CreateVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	voiceResponse, err := h.voiceService.CreateVoice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, voice.ErrInvalidVoiceData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid voice data"})
		default:
			h.logger.Errorf("create voice error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreateVoiceResponse{
		Message: "Voice created successfully",
		Voice:   *voiceResponse,
	})
}

// GetVoice handles getting a specific voice
// @Summary Get voice by ID
// @Description Get a specific voice by ID
// @Tags Voices
// @Accept json
// @Produce json
// @Param id path string true "Voice ID"
// @Success 200 {object} VoiceByIDResponse "Voice data"
// @Failure 400 {object} ErrorResponse "Invalid voice ID"
// @Failure 404 {object} ErrorResponse "Voice not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voices/{id} [get]
func (h *VoiceHandler) GetVoice(c *gin.Context) {
	voiceID, ok := requireParam(c, "id", "Voice ID")
	if !ok {
		return
	}

	voiceResponse, err := h.voiceService.GetVoice(c.Request.Context(), voiceID)
	if err != nil {
		switch {
		case errors.Is(err, voice.ErrVoiceNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voice not found"})
		default:
			h.logger.Errorf("get voice error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, VoiceByIDResponse{Voice: *voiceResponse})
}

// ListVoices handles listing voices with filters
// @Summary List voices
// @Description List voices, filterable by user, category and language
// @Tags Voices
// @Accept json
// @Produce json
// @Param user_id query string false "Filter by owner"
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (1-100, default 50)"
// @Success 200 {object} ListVoicesResponse "Voices with pagination"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voices [get]
func (h *VoiceHandler) ListVoices(c *gin.Context) {
	var filters voice.ListVoicesRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	voices, total, err := h.voiceService.ListVoices(c.Request.Context(), filters)
	if err != nil {
		h.logger.Errorf("list voices error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	filters.Normalize()
	c.JSON(http.StatusOK, ListVoicesResponse{
		Voices: voices,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: filters.Offset,
			Limit:  filters.Limit,
		},
	})
}

// SearchVoices handles voice search
// @Summary Search voices
// @Description Case-insensitive search over voice names and descriptions
// @Tags Voices
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Param user_id query string false "Filter by owner"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} SearchVoicesResponse "Matching voices"
// @Failure 400 {object} ErrorResponse "Missing search query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voices/search [get]
func (h *VoiceHandler) SearchVoices(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Search query is required"})
		return
	}

	var filters voice.ListVoicesRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	voices, total, err := h.voiceService.SearchVoices(c.Request.Context(), query, filters)
	if err != nil {
		h.logger.Errorf("search voices error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	filters.Search = query
	filters.Normalize()
	c.JSON(http.StatusOK, SearchVoicesResponse{
		Voices: voices,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: filters.Offset,
			Limit:  filters.Limit,
		},
		Query: query,
	})
}

// UpdateVoice handles updating voice metadata
// @Summary Update a voice
// @Description Update a voice's name, description, category, language or settings
// @Tags Voices
// @Accept json
// @Produce json
// @Param id path string true "Voice ID"
// @Param user_id query string true "Acting user"
// @Param request body voice.UpdateVoiceRequest true "Fields to update"
// @Success 200 {object} UpdateVoiceResponse "Voice updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 403 {object} ErrorResponse "Voice belongs to another user"
// @Failure 404 {object} ErrorResponse "Voice not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voices/{id} [patch]
func (h *VoiceHandler) UpdateVoice(c *gin.Context) {
	voiceID, ok := requireParam(c, "id", "Voice ID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req voice.UpdateVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	voiceResponse, err := h.voiceService.UpdateVoice(c.Request.Context(), userID, voiceID, req)
	if err != nil {
		switch {
		case errors.Is(err, voice.ErrVoiceNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voice not found"})
		case errors.Is(err, voice.ErrUnauthorizedAccess):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Voice belongs to another user"})
		case errors.Is(err, voice.ErrInvalidVoiceData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid voice data"})
		default:
			h.logger.Errorf("update voice error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateVoiceResponse{
		Message: "Voice updated successfully",
		Voice:   *voiceResponse,
	})
}

// DeleteVoice handles deleting a voice record. The vendor-side clone, when
// one exists, is cleaned up by the cloning delete endpoint; this one only
// removes the local record.
// @Summary Delete a voice record
// @Description Delete a voice record without touching the vendor account
// @Tags Voices
// @Accept json
// @Produce json
// @Param id path string true "Voice ID"
// @Param user_id query string true "Acting user"
// @Success 200 {object} SuccessResponse "Voice deleted successfully"
// @Failure 403 {object} ErrorResponse "Voice belongs to another user"
// @Failure 404 {object} ErrorResponse "Voice not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voices/{id} [delete]
func (h *VoiceHandler) DeleteVoice(c *gin.Context) {
	voiceID, ok := requireParam(c, "id", "Voice ID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if _, err := h.voiceService.DeleteVoice(c.Request.Context(), userID, voiceID); err != nil {
		switch {
		case errors.Is(err, voice.ErrVoiceNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voice not found"})
		case errors.Is(err, voice.ErrUnauthorizedAccess):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Voice belongs to another user"})
		default:
			h.logger.Errorf("delete voice error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Voice deleted successfully"})
}
