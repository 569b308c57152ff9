package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/camden-git/moodmatebackend/repository"
	"github.com/camden-git/moodmatebackend/stats"
)

type EmotionHandler struct {
	Guard       *OwnershipGuard
	EmotionRepo repository.EmotionRecordRepository
	Events      realtime.Publisher
	Location    *time.Location
}

type EmotionRecordPayload struct {
	Emotion        string  `json:"emotion"`
	DetectionType  string  `json:"detectionType"`
	ChildProfileID FlexInt `json:"childProfileId"`
}

type EmotionRecordResponse struct {
	ID             string `json:"id"`
	Emotion        string `json:"emotion"`
	DetectionType  string `json:"detectionType"`
	ChildProfileID string `json:"childProfileId"`
	Timestamp      int64  `json:"timestamp"`
	Date           string `json:"date"`
}

// EmotionEntryResponse is one entry of a ranged query, shaped for the
// statistics calendar.
type EmotionEntryResponse struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Emotions  []string `json:"emotions"`
	Timestamp int64    `json:"timestamp"`
}

func (h *EmotionHandler) toResponse(rec *models.EmotionRecord) EmotionRecordResponse {
	return EmotionRecordResponse{
		ID:             formatID(rec.ID),
		Emotion:        rec.Emotion,
		DetectionType:  rec.DetectionType,
		ChildProfileID: formatID(rec.ChildProfileID),
		Timestamp:      rec.CreatedAt.UnixMilli(),
		Date:           formatDisplayDate(rec.CreatedAt, h.Location),
	}
}

func (h *EmotionHandler) CreateEmotionRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var payload EmotionRecordPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	emotion := strings.TrimSpace(payload.Emotion)
	if emotion == "" {
		WriteAPIError(w, http.StatusBadRequest, msgEmotionMissing)
		return
	}
	childProfileID, ok := requireID(w, payload.ChildProfileID, msgProfileIDMissing, msgProfileIDInvalid)
	if !ok {
		return
	}
	if !models.ValidDetectionType(payload.DetectionType) {
		WriteAPIError(w, http.StatusBadRequest, msgDetectionTypeInvalid)
		return
	}

	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, msgEmotionSaveError); !ok {
		return
	}

	record := &models.EmotionRecord{
		ChildProfileID: childProfileID,
		Emotion:        emotion,
		DetectionType:  payload.DetectionType,
	}
	if err := h.EmotionRepo.Create(record); err != nil {
		writeInternalError(w, r, msgEmotionSaveError, err)
		return
	}

	publish(h.Events, userID, realtime.Event{
		Type:           realtime.EventEmotionRecorded,
		ChildProfileID: formatID(childProfileID),
		RecordID:       formatID(record.ID),
	})

	writeJSON(w, http.StatusCreated, h.toResponse(record))
}

// ListEmotionRecords returns every emotion recorded for a profile, newest
// first.
func (h *EmotionHandler) ListEmotionRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	childProfileID, ok := queryID(w, r, "childProfileId", msgProfileIDMissing, msgProfileIDInvalid)
	if !ok {
		return
	}
	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, msgEmotionFetchError); !ok {
		return
	}

	records, err := h.EmotionRepo.ListByChildProfileID(childProfileID)
	if err != nil {
		writeInternalError(w, r, msgEmotionFetchError, err)
		return
	}

	resp := make([]EmotionRecordResponse, len(records))
	for i := range records {
		resp[i] = h.toResponse(&records[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// rangedRecords runs the checks shared by the ranged endpoints and returns
// the known emotions of the profile between startDate and endDate.
func (h *EmotionHandler) rangedRecords(w http.ResponseWriter, r *http.Request) ([]models.EmotionRecord, bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return nil, false
	}
	childProfileID, ok := queryID(w, r, "childProfileId", msgProfileIDMissing, msgProfileIDInvalid)
	if !ok {
		return nil, false
	}

	q := r.URL.Query()
	start, err := parseBound(strings.TrimSpace(q.Get("startDate")), h.Location, false)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidDate)
		return nil, false
	}
	end, err := parseBound(strings.TrimSpace(q.Get("endDate")), h.Location, true)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidDate)
		return nil, false
	}
	if start != nil && end != nil && start.After(*end) {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidRange)
		return nil, false
	}

	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, msgEmotionFetchError); !ok {
		return nil, false
	}

	records, err := h.EmotionRepo.ListInRange(childProfileID, repository.EmotionRange{Start: start, End: end})
	if err != nil {
		writeInternalError(w, r, msgEmotionFetchError, err)
		return nil, false
	}
	return records, true
}

// ListEmotionRange returns the known emotions of a profile in a date range,
// oldest first.
func (h *EmotionHandler) ListEmotionRange(w http.ResponseWriter, r *http.Request) {
	records, ok := h.rangedRecords(w, r)
	if !ok {
		return
	}

	resp := make([]EmotionEntryResponse, len(records))
	for i, rec := range records {
		resp[i] = EmotionEntryResponse{
			ID:        formatID(rec.ID),
			Date:      formatDay(rec.CreatedAt, h.Location),
			Emotions:  []string{strings.ToLower(rec.Emotion)},
			Timestamp: rec.CreatedAt.UnixMilli(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// EmotionStats summarizes the same range per day.
func (h *EmotionHandler) EmotionStats(w http.ResponseWriter, r *http.Request) {
	records, ok := h.rangedRecords(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.Summarize(records, h.Location))
}
