package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/geoquest/GeoQuest_Go/internal/care"
	"github.com/geoquest/GeoQuest_Go/internal/domain"
	"github.com/geoquest/GeoQuest_Go/internal/logger"
)

const (
	// multipartOverhead covers form fields and boundaries around the photo
	multipartOverhead = 64 << 10
	// multipartMemory is kept in memory before spilling to temp files
	multipartMemory = 1 << 20

	formFieldPhoto = "photo"
	queryLimit     = "limit"
	urlParamPlant  = "plantID"
)

// VerifyCareRequest holds the non-file fields of a care submission
type VerifyCareRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	PlantID string `form:"plant_id" validate:"required,uuid"`
	TaskID  string `form:"task_id" validate:"omitempty,uuid"`
}

// VerifyCareResponse is returned after a committed verification
type VerifyCareResponse struct {
	Message      string `json:"message"`
	HealthUpdate string `json:"health_update"`
	XPGained     int    `json:"xp_gained"`
	TotalXP      int64  `json:"total_xp"`
	HealthScore  int    `json:"health_score"`
	Tip          string `json:"tip,omitempty"`
	Action       string `json:"action"`
	CareLogID    string `json:"care_log_id"`
	PhotoURL     string `json:"photo_url"`
}

// CareLogsResponse lists recent care logs for a plant
type CareLogsResponse struct {
	PlantID string           `json:"plant_id"`
	Logs    []domain.CareLog `json:"logs"`
}

// CareHandler serves the care verification endpoints
type CareHandler struct {
	service        care.Service
	maxUploadBytes int64
}

// NewCareHandler creates a care handler. maxUploadBytes caps the photo size.
func NewCareHandler(service care.Service, maxUploadBytes int64) *CareHandler {
	return &CareHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleVerifyCare verifies a daily care photo
// @Summary Verify plant care
// @Description Assesses a care photo, updates plant health and task schedule, and awards XP
// @Tags care
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header string true "Authenticated user id"
// @Param photo formData file true "Care photo"
// @Param plant_id formData string true "Plant id"
// @Param task_id formData string false "Care task id"
// @Success 200 {object} VerifyCareResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/care/verify [post]
func (h *CareHandler) HandleVerifyCare(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgPhotoTooLarge, h.maxUploadBytes))
			return
		}
		log.Warn("Failed to parse care submission", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMultipart)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	req := VerifyCareRequest{
		UserID:  UserIDFromContext(r.Context()),
		PlantID: r.FormValue("plant_id"),
		TaskID:  r.FormValue("task_id"),
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	image, mimeType, err := h.readPhoto(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Debug("Care verification request decoded", "plant_id", req.PlantID, "task_id", req.TaskID, "bytes", len(image))

	result, err := h.service.VerifyCare(r.Context(), domain.CareSubmission{
		UserID:   req.UserID,
		PlantID:  req.PlantID,
		TaskID:   req.TaskID,
		Image:    image,
		MimeType: mimeType,
	})
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			log.Error("Care verification failed", "error", err, "plant_id", req.PlantID)
		} else {
			log.Warn("Care verification rejected", "error", err, "plant_id", req.PlantID)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, VerifyCareResponse{
		Message:      MsgCareVerified,
		HealthUpdate: result.Status,
		XPGained:     result.XPGained,
		TotalXP:      result.TotalXP,
		HealthScore:  result.HealthScore,
		Tip:          result.Tip,
		Action:       string(result.CareLog.Action),
		CareLogID:    result.CareLog.ID,
		PhotoURL:     result.CareLog.PhotoURL,
	})
}

func (h *CareHandler) readPhoto(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile(formFieldPhoto)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", errors.New(ErrMsgPhotoRequired)
		}
		return nil, "", errors.New(ErrMsgInvalidMultipart)
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		return nil, "", fmt.Errorf(ErrMsgPhotoTooLarge, h.maxUploadBytes)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.New(ErrMsgInvalidMultipart)
	}
	if len(data) == 0 {
		return nil, "", errors.New(ErrMsgPhotoRequired)
	}
	return data, header.Header.Get("Content-Type"), nil
}

// HandleListCareLogs returns a plant's most recent care logs
// @Summary List care logs
// @Tags care
// @Produce json
// @Param plantID path string true "Plant id"
// @Param limit query int false "Number of logs (1-50)" default(10)
// @Success 200 {object} CareLogsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plants/{plantID}/care-logs [get]
func (h *CareHandler) HandleListCareLogs(w http.ResponseWriter, r *http.Request) {
	plantID := chi.URLParam(r, urlParamPlant)
	if err := GetValidator().ValidateVar(plantID, "required,uuid"); err != nil {
		respondError(w, http.StatusNotFound, ErrMsgPlantNotFoundError)
		return
	}

	limit := care.DefaultCareLogLimit
	if raw := r.URL.Query().Get(queryLimit); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > care.MaxCareLogLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = n
	}

	logs, err := h.service.RecentCareLogs(r.Context(), plantID, limit)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			logger.FromContext(r.Context()).Error("Failed to list care logs", "error", err, "plant_id", plantID)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, CareLogsResponse{PlantID: plantID, Logs: logs})
}
