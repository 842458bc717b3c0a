package query

import (
	"time"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
)

// DaySchedule is one calendar day of the weekly view.
type DaySchedule struct {
	Date     string                 `json:"date"`
	Weekday  string                 `json:"weekday"`
	Workouts []domain.WorkoutRecord `json:"workouts"`
}

// WeekSummary aggregates the week shown on the calendar.
type WeekSummary struct {
	Workouts      int     `json:"workouts"`
	TotalDuration int     `json:"totalDuration"`
	AvgIntensity  float64 `json:"avgIntensity"`
	MostTrained   string  `json:"mostTrained"`
}

// WeekView is the calendar grid for one Sunday-aligned week.
type WeekView struct {
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Days    []DaySchedule `json:"days"`
	Summary WeekSummary   `json:"summary"`
}

// Week derives the calendar view for the week containing ref: the seven
// dates Sunday through Saturday, each day's workouts in display order,
// and the week's summary stats.
//
// When workout-type counts tie for "most trained", the type earliest in
// domain.WorkoutTypes wins, so the pick is deterministic.
func Week(records []domain.WorkoutRecord, ref time.Time) WeekView {
	start := weekStart(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()))

	days := make([]DaySchedule, 7)
	var weekRecords []domain.WorkoutRecord
	for i := range days {
		day := start.AddDate(0, 0, i)
		date := day.Format(domain.DateLayout)
		days[i] = DaySchedule{
			Date:     date,
			Weekday:  day.Format("Mon"),
			Workouts: []domain.WorkoutRecord{},
		}
		for _, rec := range records {
			if rec.Date == date {
				days[i].Workouts = append(days[i].Workouts, rec)
				weekRecords = append(weekRecords, rec)
			}
		}
	}

	stats := SummaryStats(weekRecords)
	return WeekView{
		Start: start.Format(domain.DateLayout),
		End:   start.AddDate(0, 0, 6).Format(domain.DateLayout),
		Days:  days,
		Summary: WeekSummary{
			Workouts:      stats.Count,
			TotalDuration: stats.TotalDuration,
			AvgIntensity:  stats.AvgIntensity,
			MostTrained:   mostTrained(weekRecords),
		},
	}
}

func mostTrained(records []domain.WorkoutRecord) string {
	if len(records) == 0 {
		return "None"
	}
	counts := make(map[domain.WorkoutType]int)
	for _, rec := range records {
		counts[rec.Type]++
	}
	var best domain.WorkoutType
	bestCount := 0
	for _, t := range domain.WorkoutTypes {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	if bestCount == 0 {
		// Only unknown types present; fall back to the first record.
		return records[0].Type.DisplayName()
	}
	return best.DisplayName()
}
