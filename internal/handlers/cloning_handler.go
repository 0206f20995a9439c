package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voicesmith/internal/domains/generation"
	"voicesmith/internal/domains/voice"
	"voicesmith/internal/elevenlabs"
	"voicesmith/pkg/Logger"
)

// CloningHandler handles the voice cloning and synthesis endpoints backed by
// the vendor API.
type CloningHandler struct {
	cloneService      voice.CloneService
	voiceService      voice.VoiceService
	generationService generation.GenerationService
	vendor            *elevenlabs.Client
	maxUploadBytes    int64
	logger            *Logger.Logger
}

// NewCloningHandler creates a new cloning handler
func NewCloningHandler(
	cloneService voice.CloneService,
	voiceService voice.VoiceService,
	generationService generation.GenerationService,
	vendor *elevenlabs.Client,
	maxUploadBytes int64,
	logger *Logger.Logger,
) *CloningHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 25 * 1024 * 1024
	}
	return &CloningHandler{
		cloneService:      cloneService,
		voiceService:      voiceService,
		generationService: generationService,
		vendor:            vendor,
		maxUploadBytes:    maxUploadBytes,
		logger:            logger,
	}
}

// CloneVoice handles a clone upload
// @Summary Clone a voice from an audio sample
// @Description Upload a trimmed audio sample and create a cloned voice from it
// @Tags Cloning
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio sample (max 25MB)"
// @Param name formData string true "Voice name"
// @Param user_id formData string true "Owning user"
// @Param description formData string false "Voice description"
// @Param category formData string false "Voice category"
// @Param language formData string false "Voice language"
// @Success 201 {object} CloneVoiceResponse "Voice cloned successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 413 {object} ErrorResponse "Sample exceeds the upload limit"
// @Failure 502 {object} ErrorResponse "Voice service failure"
// @Router /cloning/clone [post]
func (h *CloningHandler) CloneVoice(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Voice name is required"})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Audio sample is required"})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Audio sample exceeds the upload limit"})
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		h.logger.Errorf("reading clone upload failed: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read audio sample"})
		return
	}

	resp, err := h.cloneService.CloneVoice(c.Request.Context(), voice.CloneRequest{
		UserID:      userID,
		Name:        name,
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Language:    c.PostForm("language"),
		Sample: voice.Sample{
			FileName: fileHeader.Filename,
			MimeType: uploadMimeType(fileHeader),
			Data:     data,
		},
	})
	if err != nil {
		h.respondCloneError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CloneVoiceResponse{
		Message: "Voice cloned successfully",
		Voice:   *resp,
	})
}

// Synthesize handles text-to-speech against a cloned voice
// @Summary Synthesize speech
// @Description Generate MP3 speech from text using a cloned voice
// @Tags Cloning
// @Accept json
// @Produce audio/mpeg
// @Param id path string true "Voice ID"
// @Param user_id query string true "Acting user"
// @Param request body SynthesizeRequest true "Text to synthesize"
// @Success 200 {file} binary "MP3 audio"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Voice not found"
// @Failure 502 {object} ErrorResponse "Voice service failure"
// @Router /cloning/voices/{id}/synthesize [post]
func (h *CloningHandler) Synthesize(c *gin.Context) {
	voiceID, ok := requireParam(c, "id", "Voice ID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	v, err := h.voiceService.GetVoice(c.Request.Context(), voiceID)
	if err != nil {
		if errors.Is(err, voice.ErrVoiceNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voice not found"})
			return
		}
		h.logger.Errorf("synthesize voice lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	if v.ExternalVoiceID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Voice has no cloned vendor voice"})
		return
	}

	settings := v.Settings
	if req.Settings != nil {
		settings = *req.Settings
	}
	modelID := req.ModelID
	if modelID == "" {
		modelID = v.ModelID
	}

	audio, err := h.vendor.Synthesize(c.Request.Context(), elevenlabs.SynthesizeRequest{
		ExternalVoiceID: v.ExternalVoiceID,
		Text:            req.Text,
		ModelID:         modelID,
		Settings:        settings,
	})
	if err != nil {
		h.respondVendorError(c, err, "Speech synthesis failed")
		return
	}

	if parsedID, perr := uuid.Parse(v.ID); perr == nil {
		if _, rerr := h.generationService.RecordGeneration(c.Request.Context(), userID, parsedID, req.Text, modelID); rerr != nil {
			// History is best effort; the user still gets their audio.
			h.logger.Warnf("recording generation failed: %v", rerr)
		}
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// DeleteVoice handles removing a cloned voice
// @Summary Delete a voice
// @Description Delete a voice record, its vendor-side clone and its generation history
// @Tags Cloning
// @Accept json
// @Produce json
// @Param id path string true "Voice ID"
// @Param user_id query string true "Acting user"
// @Success 200 {object} SuccessResponse "Voice deleted successfully"
// @Failure 403 {object} ErrorResponse "Voice belongs to another user"
// @Failure 404 {object} ErrorResponse "Voice not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cloning/voices/{id} [delete]
func (h *CloningHandler) DeleteVoice(c *gin.Context) {
	voiceID, ok := requireParam(c, "id", "Voice ID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.cloneService.RemoveVoice(c.Request.Context(), userID, voiceID); err != nil {
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

	if err := h.generationService.PurgeVoice(c.Request.Context(), voiceID); err != nil {
		h.logger.Warnf("purging generations for %s failed: %v", voiceID, err)
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Voice deleted successfully"})
}

// VendorVoices handles listing the vendor account's voices
// @Summary List vendor voices
// @Description List the voices present on the vendor account
// @Tags Cloning
// @Produce json
// @Success 200 {object} VendorVoicesResponse "Vendor voices"
// @Failure 502 {object} ErrorResponse "Voice service failure"
// @Router /cloning/voices [get]
func (h *CloningHandler) VendorVoices(c *gin.Context) {
	voices, err := h.vendor.ListVoices(c.Request.Context())
	if err != nil {
		h.respondVendorError(c, err, "Could not list vendor voices")
		return
	}
	c.JSON(http.StatusOK, VendorVoicesResponse{Voices: voices})
}

// Usage handles the vendor usage report
// @Summary Get vendor usage
// @Description Report the vendor subscription's character usage
// @Tags Cloning
// @Produce json
// @Success 200 {object} UsageResponse "Usage data"
// @Failure 502 {object} ErrorResponse "Voice service failure"
// @Router /cloning/usage [get]
func (h *CloningHandler) Usage(c *gin.Context) {
	usage, err := h.vendor.GetUsage(c.Request.Context())
	if err != nil {
		h.respondVendorError(c, err, "Could not fetch usage")
		return
	}
	c.JSON(http.StatusOK, UsageResponse{Usage: *usage})
}

// Models handles listing synthesis models
// @Summary List synthesis models
// @Description List the models available for speech synthesis
// @Tags Cloning
// @Produce json
// @Success 200 {object} ModelsResponse "Available models"
// @Failure 502 {object} ErrorResponse "Voice service failure"
// @Router /cloning/models [get]
func (h *CloningHandler) Models(c *gin.Context) {
	models, err := h.vendor.ListModels(c.Request.Context())
	if err != nil {
		h.respondVendorError(c, err, "Could not list models")
		return
	}
	c.JSON(http.StatusOK, ModelsResponse{Models: models})
}

func (h *CloningHandler) respondCloneError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, voice.ErrSampleTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Audio sample exceeds the upload limit"})
	case errors.Is(err, voice.ErrUnsupportedSample):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Sample must be an audio file"})
	case errors.Is(err, voice.ErrInvalidVoiceData):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name and user_id are required"})
	default:
		h.respondVendorError(c, err, "Voice cloning failed")
	}
}

// respondVendorError surfaces the vendor's detail message when one exists.
// Vendor 4xx statuses pass through so clients can react to quota and
// validation failures; vendor 5xx becomes a bad gateway.
func (h *CloningHandler) respondVendorError(c *gin.Context, err error, label string) {
	var apiErr *elevenlabs.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		c.JSON(status, ErrorResponse{Error: label, Details: apiErr.Detail})
		return
	}
	h.logger.Errorf("%s: %v", label, err)
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: label})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// uploadMimeType prefers the part's declared content type, falling back to
// the file extension.
func uploadMimeType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	switch strings.ToLower(path.Ext(fh.Filename)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	case ".flac":
		return "audio/flac"
	case ".m4a":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}
