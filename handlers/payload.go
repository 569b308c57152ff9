package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

// FlexInt accepts a JSON number or a numeric string. Clients send ids and
// ages both ways. Unparseable values leave Valid false instead of failing the
// whole body.
type FlexInt struct {
	Value   int64
	Present bool
	Valid   bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		return nil
	}
	f.Present = true

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		f.Value, f.Valid = n, true
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil && fl == math.Trunc(fl) && math.Abs(fl) < math.MaxInt32 {
		f.Value, f.Valid = int64(fl), true
	}
	return nil
}

// ID returns the value as a database id. ok is false for missing,
// malformed or non-positive values.
func (f FlexInt) ID() (uint, bool) {
	if !f.Valid || f.Value <= 0 {
		return 0, false
	}
	return uint(f.Value), true
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// requireID validates an id field that has already been decoded. It writes a
// 400 response and returns false when the id is missing or malformed.
func requireID(w http.ResponseWriter, f FlexInt, missingMsg, invalidMsg string) (uint, bool) {
	if !f.Present {
		WriteAPIError(w, http.StatusBadRequest, missingMsg)
		return 0, false
	}
	id, ok := f.ID()
	if !ok {
		WriteAPIError(w, http.StatusBadRequest, invalidMsg)
		return 0, false
	}
	return id, true
}

// queryID reads a numeric id from the query string, writing a 400 response
// when it is absent or malformed.
func queryID(w http.ResponseWriter, r *http.Request, name, missingMsg, invalidMsg string) (uint, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		WriteAPIError(w, http.StatusBadRequest, missingMsg)
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		WriteAPIError(w, http.StatusBadRequest, invalidMsg)
		return 0, false
	}
	return uint(id), true
}

// trimmedValues trims every entry and drops the blank ones.
func trimmedValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
