package analyticsController

import (
	"time"

	"github.com/vedseem-infohub/Yelo-Backend/utils"
)

// Period holds the current-period start and the previous comparison window.
// The current period is open-ended (queries use createdAt >= Start); the
// previous one is the half-open [PrevStart, Start).
type Period struct {
	Start     time.Time
	PrevStart time.Time
}

// ResolvePeriod maps a dateRange selector to its boundaries:
// week = trailing 7 days vs the 7 before, month = calendar month vs the
// previous one, year = calendar year vs the previous one. Anything else
// falls back to month.
func ResolvePeriod(dateRange string, now time.Time) Period {
	switch dateRange {
	case "week":
		start := midnight(now.AddDate(0, 0, -7))
		return Period{Start: start, PrevStart: start.AddDate(0, 0, -7)}
	case "year":
		return Period{
			Start:     time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()),
			PrevStart: time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location()),
		}
	default: // month
		return Period{
			Start:     time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
			PrevStart: time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location()),
		}
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TrendBucket is one slot of the revenue trend series.
type TrendBucket struct {
	Start time.Time
	End   time.Time
	Label string
}

// TrendBuckets returns the trend slots oldest first: 7 daily buckets for
// week, 12 monthly for year, 6 monthly otherwise.
func TrendBuckets(dateRange string, now time.Time) []TrendBucket {
	var periods int
	daily := false
	switch dateRange {
	case "week":
		periods, daily = 7, true
	case "year":
		periods = 12
	default:
		periods = 6
	}

	buckets := make([]TrendBucket, 0, periods)
	for i := periods - 1; i >= 0; i-- {
		var b TrendBucket
		if daily {
			b.Start = midnight(now.AddDate(0, 0, -i))
			b.End = b.Start.AddDate(0, 0, 1)
			b.Label = b.Start.Format("Jan 2")
		} else {
			b.Start = time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
			b.End = b.Start.AddDate(0, 1, 0)
			b.Label = b.Start.Format("Jan")
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// KPI is one dashboard tile.
type KPI struct {
	Value      float64 `json:"value"`
	Display    string  `json:"display"`
	Change     float64 `json:"change"`
	IsPositive bool    `json:"isPositive"`
}

func newKPI(value float64, display string, previous float64) KPI {
	change := utils.PercentChange(value, previous)
	return KPI{
		Value:      value,
		Display:    display,
		Change:     change,
		IsPositive: change >= 0,
	}
}
