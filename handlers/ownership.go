package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/repository"
	"gorm.io/gorm"
)

// ErrNotOwned is returned when a resource does not exist or belongs to
// another user. Both cases are reported to clients as 404.
var ErrNotOwned = errors.New("resource not found or not owned by user")

// OwnershipGuard resolves child-scoped resources against the authenticated
// user. Every handler that takes a childProfileId or a record id goes
// through it.
type OwnershipGuard struct {
	Profiles    repository.ChildProfileRepository
	Expressions repository.ExpressionRecordRepository
}

// ChildProfile returns the profile if userID owns it.
func (g *OwnershipGuard) ChildProfile(userID, childProfileID uint) (*models.ChildProfile, error) {
	profile, err := g.Profiles.GetByID(childProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("ownership check for child profile %d: %w", childProfileID, err)
	}
	if !profile.OwnedBy(userID) {
		return nil, ErrNotOwned
	}
	return profile, nil
}

// ExpressionRecord returns the record if userID wrote it.
func (g *OwnershipGuard) ExpressionRecord(userID, recordID uint) (*models.ExpressionRecord, error) {
	record, err := g.Expressions.GetByID(recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("ownership check for expression record %d: %w", recordID, err)
	}
	if !record.OwnedBy(userID) {
		return nil, ErrNotOwned
	}
	return record, nil
}

// requireChildProfile runs the profile check and writes the 404/500 response
// on failure.
func (g *OwnershipGuard) requireChildProfile(w http.ResponseWriter, r *http.Request, userID, childProfileID uint, internalMsg string) (*models.ChildProfile, bool) {
	profile, err := g.ChildProfile(userID, childProfileID)
	if err != nil {
		g.writeError(w, r, err, msgProfileNotOwned, internalMsg)
		return nil, false
	}
	return profile, true
}

// requireExpressionRecord is requireChildProfile for expression records.
func (g *OwnershipGuard) requireExpressionRecord(w http.ResponseWriter, r *http.Request, userID, recordID uint, internalMsg string) (*models.ExpressionRecord, bool) {
	record, err := g.ExpressionRecord(userID, recordID)
	if err != nil {
		g.writeError(w, r, err, msgRecordNotOwned, internalMsg)
		return nil, false
	}
	return record, true
}

func (g *OwnershipGuard) writeError(w http.ResponseWriter, r *http.Request, err error, notOwnedMsg, internalMsg string) {
	if errors.Is(err, ErrNotOwned) {
		WriteAPIError(w, http.StatusNotFound, notOwnedMsg)
		return
	}
	writeInternalError(w, r, internalMsg, err)
}
