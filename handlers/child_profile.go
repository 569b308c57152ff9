package handlers

import (
	"net/http"
	"strings"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/camden-git/moodmatebackend/repository"
)

type ChildProfileHandler struct {
	ProfileRepo repository.ChildProfileRepository
	Events      realtime.Publisher
}

type ChildProfilePayload struct {
	Name   string  `json:"name"`
	Age    FlexInt `json:"age"`
	Avatar FlexInt `json:"avatar"`
	Autism bool    `json:"autism"`
	ADHD   bool    `json:"adhd"`
}

func (h *ChildProfileHandler) CreateChildProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var payload ChildProfilePayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" || !payload.Age.Present || !payload.Avatar.Present {
		WriteAPIError(w, http.StatusBadRequest, msgChildProfileMissing)
		return
	}
	if !payload.Age.Valid || payload.Age.Value < 0 {
		WriteAPIError(w, http.StatusBadRequest, msgChildAgeInvalid)
		return
	}
	if !payload.Avatar.Valid || payload.Avatar.Value < 0 {
		WriteAPIError(w, http.StatusBadRequest, msgChildAvatarInvalid)
		return
	}

	profile := &models.ChildProfile{
		UserID: userID,
		Name:   name,
		Age:    int(payload.Age.Value),
		Avatar: int(payload.Avatar.Value),
		Autism: payload.Autism,
		ADHD:   payload.ADHD,
	}
	if err := h.ProfileRepo.Create(profile); err != nil {
		writeInternalError(w, r, msgChildProfileError, err)
		return
	}

	publish(h.Events, userID, realtime.Event{
		Type:           realtime.EventProfileCreated,
		ChildProfileID: formatID(profile.ID),
	})

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":        msgChildProfileOK,
		"childProfileId": profile.ID,
	})
}

// publish is a no-op when no realtime hub is wired.
func publish(p realtime.Publisher, userID uint, event realtime.Event) {
	if p == nil {
		return
	}
	p.Publish(userID, event)
}
