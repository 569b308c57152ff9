// Package stats folds emotion records into the per-day summaries shown on
// the statistics page.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/camden-git/moodmatebackend/models"
)

// Emotions lists the tracked emotions in display order. The order also breaks
// ties when picking a dominant emotion.
var Emotions = []string{"senang", "marah", "sedih", "kaget"}

// OtherEmotion counts labels outside Emotions.
const OtherEmotion = "other"

const dateLayout = "2006-01-02"

// DaySummary holds the counts for one calendar day.
type DaySummary struct {
	Date     string         `json:"date"`
	Emotions map[string]int `json:"emotions"`
	Total    int            `json:"total"`
	Dominant string         `json:"dominant,omitempty"`
}

// Summary is the result of Summarize.
type Summary struct {
	Days     []DaySummary   `json:"days"`
	Totals   map[string]int `json:"totals"`
	Total    int            `json:"total"`
	Dominant string         `json:"dominant,omitempty"`
}

func newCounts() map[string]int {
	counts := make(map[string]int, len(Emotions)+1)
	for _, e := range Emotions {
		counts[e] = 0
	}
	counts[OtherEmotion] = 0
	return counts
}

func bucket(emotion string) string {
	emotion = strings.ToLower(strings.TrimSpace(emotion))
	for _, e := range Emotions {
		if e == emotion {
			return e
		}
	}
	return OtherEmotion
}

// Dominant returns the tracked emotion with the highest count, or "" when
// none was recorded.
func Dominant(counts map[string]int) string {
	best, bestCount := "", 0
	for _, e := range Emotions {
		if counts[e] > bestCount {
			best, bestCount = e, counts[e]
		}
	}
	return best
}

// Summarize groups records by their calendar day in loc. Records labelled
// unknown are skipped. Days are returned oldest first and only days with at
// least one record appear.
func Summarize(records []models.EmotionRecord, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[string]*DaySummary)
	totals := newCounts()
	total := 0

	for _, r := range records {
		if strings.EqualFold(strings.TrimSpace(r.Emotion), models.EmotionUnknown) {
			continue
		}
		date := r.CreatedAt.In(loc).Format(dateLayout)
		day, ok := byDay[date]
		if !ok {
			day = &DaySummary{Date: date, Emotions: newCounts()}
			byDay[date] = day
		}
		b := bucket(r.Emotion)
		day.Emotions[b]++
		day.Total++
		totals[b]++
		total++
	}

	days := make([]DaySummary, 0, len(byDay))
	for _, day := range byDay {
		day.Dominant = Dominant(day.Emotions)
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Summary{
		Days:     days,
		Totals:   totals,
		Total:    total,
		Dominant: Dominant(totals),
	}
}
