package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		raw     string
		present bool
		valid   bool
		value   int64
	}{
		{`12`, true, true, 12},
		{`"12"`, true, true, 12},
		{`" 7 "`, true, true, 7},
		{`3.0`, true, true, 3},
		{`3.5`, true, false, 0},
		{`"abc"`, true, false, 0},
		{`-4`, true, true, -4},
		{`null`, false, false, 0},
		{`""`, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var payload struct {
				N FlexInt `json:"n"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"n":`+tt.raw+`}`), &payload))
			assert.Equal(t, tt.present, payload.N.Present)
			assert.Equal(t, tt.valid, payload.N.Valid)
			assert.Equal(t, tt.value, payload.N.Value)
		})
	}

	var missing struct {
		N FlexInt `json:"n"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.False(t, missing.N.Present)
}

func TestFlexIntID(t *testing.T) {
	id, ok := FlexInt{Value: 5, Present: true, Valid: true}.ID()
	assert.True(t, ok)
	assert.Equal(t, uint(5), id)

	_, ok = FlexInt{Value: 0, Present: true, Valid: true}.ID()
	assert.False(t, ok)
	_, ok = FlexInt{Value: -1, Present: true, Valid: true}.ID()
	assert.False(t, ok)
	_, ok = FlexInt{Present: true}.ID()
	assert.False(t, ok)
}

func TestTrimmedValues(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, trimmedValues([]string{" a ", "", "  ", "b c"}))
	assert.Empty(t, trimmedValues(nil))
}

func TestFormatDisplayDate(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	ts := time.Date(2026, 10, 17, 7, 5, 0, 0, time.UTC)

	assert.Equal(t, "17 Oktober 2026 pukul 14.05", formatDisplayDate(ts, wib))
	assert.Equal(t, "2026-10-17", formatDay(ts, wib))
	assert.Equal(t, "2026-10-18", formatDay(time.Date(2026, 10, 17, 17, 0, 0, 0, time.UTC), wib))
}

func TestParseBound(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)

	got, err := parseBound("", wib, false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseBound("2026-10-01", wib, false)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 9, 30, 17, 0, 0, 0, time.UTC)))

	got, err = parseBound("2026-10-01", wib, true)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 1, 16, 59, 59, 999999999, time.UTC)))

	got, err = parseBound("2026-10-01T03:00:00Z", wib, true)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 1, 3, 0, 0, 0, time.UTC)))

	_, err = parseBound("01/10/2026", wib, false)
	assert.Error(t, err)
}
