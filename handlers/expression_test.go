package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/moodmatebackend/models"
)

func TestExpressionRecordLifecycle(t *testing.T) {
	s := newTestServer(t)
	user, token := s.seedUser("ibu@example.com")
	_, otherToken := s.seedUser("ayah@example.com")
	profile := s.seedProfile(user.ID, "Zaki")
	sibling := s.seedProfile(user.ID, "Ayu")

	rr := s.do(http.MethodPost, "/expression-records", token, map[string]interface{}{
		"title": "   ", "text": "  Hari ini Zaki tertawa  ", "childProfileId": profile.ID,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created ExpressionRecordResponse
	decodeBody(t, rr, &created)
	assert.Equal(t, models.DefaultExpressionTitle, created.Title)
	assert.Equal(t, "Hari ini Zaki tertawa", created.Text)

	rr = s.do(http.MethodPost, "/api/expression-records", token, map[string]interface{}{
		"title": "Kedua", "text": "Catatan kedua", "childProfileId": fmt.Sprint(profile.ID),
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(http.MethodGet, fmt.Sprintf("/expression-records?childProfileId=%d", profile.ID), token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []ExpressionRecordResponse
	decodeBody(t, rr, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Kedua", list[0].Title)
	assert.Equal(t, created.ID, list[1].ID)

	// moving the entry to a sibling profile
	rr = s.do(http.MethodPut, "/expression-records", token, map[string]interface{}{
		"id": created.ID, "title": "Baru", "text": "Teks baru", "childProfileId": sibling.ID,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated ExpressionRecordResponse
	decodeBody(t, rr, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Baru", updated.Title)
	assert.Equal(t, "Teks baru", updated.Text)
	assert.GreaterOrEqual(t, updated.Timestamp, created.Timestamp)

	rr = s.do(http.MethodGet, fmt.Sprintf("/expression-records?childProfileId=%d", sibling.ID), token, nil)
	decodeBody(t, rr, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// other caregivers see 404 for every operation
	rr = s.do(http.MethodPut, "/expression-records", otherToken, map[string]interface{}{
		"id": created.ID, "text": "x", "childProfileId": sibling.ID,
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = s.do(http.MethodDelete, "/expression-records?id="+created.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, msgRecordNotOwned, errorMessage(t, rr))

	rr = s.do(http.MethodDelete, "/expression-records?id="+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, msgExpressionDeleted), rr.Body.String())

	rr = s.do(http.MethodDelete, "/expression-records?id="+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExpressionRecordValidation(t *testing.T) {
	s := newTestServer(t)
	user, token := s.seedUser("ibu@example.com")
	other, _ := s.seedUser("ayah@example.com")
	profile := s.seedProfile(user.ID, "Zaki")
	foreign := s.seedProfile(other.ID, "Budi")

	rr := s.do(http.MethodPost, "/expression-records", token, map[string]interface{}{"text": "  ", "childProfileId": profile.ID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, msgExpressionTextMissing, errorMessage(t, rr))

	rr = s.do(http.MethodPost, "/expression-records", token, map[string]interface{}{"text": "isi", "childProfileId": foreign.ID})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, msgProfileNotOwned, errorMessage(t, rr))

	rr = s.do(http.MethodPost, "/expression-records", token, map[string]interface{}{"text": "isi", "childProfileId": profile.ID})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created ExpressionRecordResponse
	decodeBody(t, rr, &created)

	rr = s.do(http.MethodPut, "/expression-records", token, map[string]interface{}{"text": "isi", "childProfileId": profile.ID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, msgExpressionIDMissing, errorMessage(t, rr))

	rr = s.do(http.MethodPut, "/expression-records", token, map[string]interface{}{"id": created.ID, "text": "isi", "childProfileId": foreign.ID})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, msgProfileNotOwned, errorMessage(t, rr))

	rr = s.do(http.MethodDelete, "/expression-records", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, msgExpressionIDMissing, errorMessage(t, rr))

	rr = s.do(http.MethodDelete, "/expression-records?id=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, msgExpressionIDInvalid, errorMessage(t, rr))

	rr = s.do(http.MethodDelete, "/expression-records?id=9999", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
