package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/camden-git/moodmatebackend/repository"
	"gorm.io/gorm"
)

type ExpressionHandler struct {
	Guard          *OwnershipGuard
	ExpressionRepo repository.ExpressionRecordRepository
	Events         realtime.Publisher
	Location       *time.Location
}

type ExpressionRecordPayload struct {
	ID             FlexInt `json:"id"`
	Title          *string `json:"title"`
	Text           string  `json:"text"`
	ChildProfileID FlexInt `json:"childProfileId"`
}

type ExpressionRecordResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
}

// toResponse stamps the response with at, createdAt for new records and
// updatedAt after an edit.
func (h *ExpressionHandler) toResponse(rec *models.ExpressionRecord, at time.Time) ExpressionRecordResponse {
	return ExpressionRecordResponse{
		ID:        formatID(rec.ID),
		Title:     rec.Title,
		Text:      rec.Text,
		Timestamp: at.UnixMilli(),
		Date:      formatDisplayDate(at, h.Location),
	}
}

func expressionTitle(title *string) string {
	if title == nil {
		return models.DefaultExpressionTitle
	}
	if t := strings.TrimSpace(*title); t != "" {
		return t
	}
	return models.DefaultExpressionTitle
}

func (h *ExpressionHandler) CreateExpressionRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var payload ExpressionRecordPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		WriteAPIError(w, http.StatusBadRequest, msgExpressionTextMissing)
		return
	}
	childProfileID, ok := requireID(w, payload.ChildProfileID, msgProfileIDMissing, msgProfileIDInvalid)
	if !ok {
		return
	}

	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, msgExpressionSaveError); !ok {
		return
	}

	record := &models.ExpressionRecord{
		UserID:         userID,
		ChildProfileID: childProfileID,
		Title:          expressionTitle(payload.Title),
		Text:           text,
	}
	if err := h.ExpressionRepo.Create(record); err != nil {
		writeInternalError(w, r, msgExpressionSaveError, err)
		return
	}

	publish(h.Events, userID, realtime.Event{
		Type:           realtime.EventExpressionCreated,
		ChildProfileID: formatID(childProfileID),
		RecordID:       formatID(record.ID),
	})

	writeJSON(w, http.StatusCreated, h.toResponse(record, record.CreatedAt))
}

// ListExpressionRecords returns the caller's entries for a profile, newest
// first.
func (h *ExpressionHandler) ListExpressionRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	childProfileID, ok := queryID(w, r, "childProfileId", msgProfileIDMissing, msgProfileIDInvalid)
	if !ok {
		return
	}
	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, msgExpressionFetchError); !ok {
		return
	}

	records, err := h.ExpressionRepo.ListByChildProfile(userID, childProfileID)
	if err != nil {
		writeInternalError(w, r, msgExpressionFetchError, err)
		return
	}

	resp := make([]ExpressionRecordResponse, len(records))
	for i := range records {
		resp[i] = h.toResponse(&records[i], records[i].CreatedAt)
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateExpressionRecord rewrites title, text and profile of an entry. It
// may move the entry to another profile the caller owns.
func (h *ExpressionHandler) UpdateExpressionRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var payload ExpressionRecordPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	recordID, ok := requireID(w, payload.ID, msgExpressionIDMissing, msgExpressionIDInvalid)
	if !ok {
		return
	}
	text := strings.TrimSpace(payload.Text)
	if text == "" {
		WriteAPIError(w, http.StatusBadRequest, msgExpressionTextMissing)
		return
	}
	childProfileID, ok := requireID(w, payload.ChildProfileID, msgProfileIDMissing, msgProfileIDInvalid)
	if !ok {
		return
	}

	record, ok := h.Guard.requireExpressionRecord(w, r, userID, recordID, msgExpressionUpdateError)
	if !ok {
		return
	}
	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, msgExpressionUpdateError); !ok {
		return
	}

	record.Title = expressionTitle(payload.Title)
	record.Text = text
	record.ChildProfileID = childProfileID
	if err := h.ExpressionRepo.Update(record); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, msgRecordNotOwned)
			return
		}
		writeInternalError(w, r, msgExpressionUpdateError, err)
		return
	}

	publish(h.Events, userID, realtime.Event{
		Type:           realtime.EventExpressionUpdated,
		ChildProfileID: formatID(childProfileID),
		RecordID:       formatID(record.ID),
	})

	writeJSON(w, http.StatusOK, h.toResponse(record, record.UpdatedAt))
}

func (h *ExpressionHandler) DeleteExpressionRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	recordID, ok := queryID(w, r, "id", msgExpressionIDMissing, msgExpressionIDInvalid)
	if !ok {
		return
	}

	record, ok := h.Guard.requireExpressionRecord(w, r, userID, recordID, msgExpressionDeleteError)
	if !ok {
		return
	}

	if err := h.ExpressionRepo.Delete(record.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, msgRecordNotOwned)
			return
		}
		writeInternalError(w, r, msgExpressionDeleteError, err)
		return
	}

	publish(h.Events, userID, realtime.Event{
		Type:           realtime.EventExpressionDeleted,
		ChildProfileID: formatID(record.ChildProfileID),
		RecordID:       formatID(record.ID),
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": msgExpressionDeleted})
}
