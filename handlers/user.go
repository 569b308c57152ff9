package handlers

import (
	"errors"
	"net/http"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/repository"
	"gorm.io/gorm"
)

type UserHandler struct {
	UserRepo    repository.UserRepository
	ProfileRepo repository.ChildProfileRepository
}

// UserProfile lists the child profiles owned by the authenticated user.
func (h *UserHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	profiles, err := h.ProfileRepo.ListByUserID(userID)
	if err != nil {
		writeInternalError(w, r, msgUserProfileError, err)
		return
	}
	if profiles == nil {
		profiles = []models.ChildProfile{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"childProfiles": profiles})
}

// CompleteOnboarding flips the user's onboarded flag. Calling it again is a
// no-op.
func (h *UserHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.UserRepo.MarkOnboarded(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		writeInternalError(w, r, msgOnboardingError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": msgOnboardingOK,
		"user":    toUserDTO(user),
	})
}
