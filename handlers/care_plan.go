package handlers

import (
	"net/http"
	"time"

	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/camden-git/moodmatebackend/repository"
)

// carePlanList describes one of the three bulk-saved lists: its body field,
// its item key in responses and its messages.
type carePlanList struct {
	kind       repository.CarePlanKind
	itemKey    string
	missingMsg string
	savedMsg   string
	saveErrMsg string
	readErrMsg string
}

var (
	copingStrategyList = carePlanList{
		kind:       repository.CopingStrategies,
		itemKey:    "strategy",
		missingMsg: "Strategi coping dan childProfileId wajib diisi",
		savedMsg:   "Strategi coping berhasil disimpan",
		saveErrMsg: "Terjadi kesalahan saat menyimpan strategi coping",
		readErrMsg: "Terjadi kesalahan saat mengambil strategi coping",
	}
	moodTriggerList = carePlanList{
		kind:       repository.MoodTriggers,
		itemKey:    "trigger",
		missingMsg: "Pemicu mood dan childProfileId wajib diisi",
		savedMsg:   "Pemicu mood berhasil disimpan",
		saveErrMsg: "Terjadi kesalahan saat menyimpan pemicu mood",
		readErrMsg: "Terjadi kesalahan saat mengambil pemicu mood",
	}
	sensoryPreferenceList = carePlanList{
		kind:       repository.SensoryPreferences,
		itemKey:    "preference",
		missingMsg: "Preferensi dan childProfileId wajib diisi",
		savedMsg:   "Preferensi sensorik berhasil disimpan",
		saveErrMsg: "Terjadi kesalahan saat menyimpan preferensi sensorik",
		readErrMsg: "Terjadi kesalahan saat mengambil preferensi sensorik",
	}
)

type CarePlanHandler struct {
	Guard    *OwnershipGuard
	PlanRepo repository.CarePlanRepository
	Events   realtime.Publisher
	Location *time.Location
}

// CarePlanPayload carries whichever list the route expects.
type CarePlanPayload struct {
	Strategies     []string `json:"strategies"`
	Triggers       []string `json:"triggers"`
	Preferences    []string `json:"preferences"`
	ChildProfileID FlexInt  `json:"childProfileId"`
}

func (p CarePlanPayload) values(kind repository.CarePlanKind) []string {
	switch kind {
	case repository.CopingStrategies:
		return p.Strategies
	case repository.MoodTriggers:
		return p.Triggers
	default:
		return p.Preferences
	}
}

func (h *CarePlanHandler) CreateCopingStrategies(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, copingStrategyList)
}

func (h *CarePlanHandler) CreateMoodTriggers(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, moodTriggerList)
}

func (h *CarePlanHandler) CreateSensoryPreferences(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, sensoryPreferenceList)
}

func (h *CarePlanHandler) ListCopingStrategies(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, copingStrategyList)
}

func (h *CarePlanHandler) ListMoodTriggers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, moodTriggerList)
}

func (h *CarePlanHandler) ListSensoryPreferences(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, sensoryPreferenceList)
}

// create saves every non-blank value of the list in one batch.
func (h *CarePlanHandler) create(w http.ResponseWriter, r *http.Request, list carePlanList) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var payload CarePlanPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	values := trimmedValues(payload.values(list.kind))
	if len(values) == 0 || !payload.ChildProfileID.Present {
		WriteAPIError(w, http.StatusBadRequest, list.missingMsg)
		return
	}
	childProfileID, ok := requireID(w, payload.ChildProfileID, list.missingMsg, msgProfileIDInvalid)
	if !ok {
		return
	}

	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, list.saveErrMsg); !ok {
		return
	}

	if err := h.PlanRepo.CreateMany(list.kind, childProfileID, values); err != nil {
		writeInternalError(w, r, list.saveErrMsg, err)
		return
	}

	publish(h.Events, userID, realtime.Event{
		Type:           realtime.EventCarePlanUpdated,
		ChildProfileID: formatID(childProfileID),
	})

	writeJSON(w, http.StatusCreated, map[string]string{"message": list.savedMsg})
}

func (h *CarePlanHandler) list(w http.ResponseWriter, r *http.Request, list carePlanList) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	childProfileID, ok := queryID(w, r, "childProfileId", msgProfileIDMissing, msgProfileIDInvalid)
	if !ok {
		return
	}
	if _, ok := h.Guard.requireChildProfile(w, r, userID, childProfileID, list.readErrMsg); !ok {
		return
	}

	items, err := h.PlanRepo.List(list.kind, childProfileID)
	if err != nil {
		writeInternalError(w, r, list.readErrMsg, err)
		return
	}

	resp := make([]map[string]interface{}, len(items))
	for i, item := range items {
		resp[i] = map[string]interface{}{
			"id":         formatID(item.ID),
			list.itemKey: item.Value,
			"timestamp":  item.CreatedAt.UnixMilli(),
			"date":       formatDisplayDate(item.CreatedAt, h.Location),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
