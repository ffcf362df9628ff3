package engine

import (
	"sort"

	"monitor-srv/internal/model"
)

// Sunday-first weekday names.
var dayNames = []string{
	"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

var monthNames = []string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// AnalyzeTimePatterns buckets posts by hour, weekday, week number and
// month, and extracts the peak hours and days. Posts without a
// timestamp are skipped.
func AnalyzeTimePatterns(posts []model.Post) TimePatterns {
	tp := TimePatterns{
		HourlyActivity:  make(map[int]int),
		DailyActivity:   make(map[string]int),
		WeeklyActivity:  make(map[int]int),
		MonthlyActivity: make(map[string]int),
	}

	// first-seen order, counts tie-break on it
	var dayOrder []string

	for _, p := range posts {
		if p.CreatedTime == nil {
			continue
		}
		t := *p.CreatedTime

		tp.HourlyActivity[t.Hour()]++

		day := dayNames[int(t.Weekday())]
		if _, seen := tp.DailyActivity[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		tp.DailyActivity[day]++

		tp.WeeklyActivity[weekNumber(t)]++

		month := monthNames[int(t.Month())-1] + " " + t.Format("2006")
		tp.MonthlyActivity[month]++
	}

	tp.PeakHours = peakHours(tp.HourlyActivity, 5)
	tp.PeakDays = peakDays(tp.DailyActivity, dayOrder, 3)

	return tp
}

// peakHours returns the top n hours by count, ascending hour on ties.
func peakHours(hourly map[int]int, n int) []HourCount {
	var out []HourCount
	for hour := 0; hour < 24; hour++ {
		if count, ok := hourly[hour]; ok {
			out = append(out, HourCount{Hour: hour, Count: count})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// peakDays returns the top n days by count, first corpus appearance on
// ties.
func peakDays(daily map[string]int, order []string, n int) []DayCount {
	var out []DayCount
	for _, day := range order {
		out = append(out, DayCount{Day: day, Count: daily[day]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
