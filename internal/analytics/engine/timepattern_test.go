package engine

import (
	"testing"
	"time"

	"monitor-srv/internal/model"
)

func postAt(t time.Time) model.Post {
	return model.Post{ID: "p", CreatedTime: &t}
}

func TestWeekNumber(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		// 2024-01-01 is a Monday (weekday 1): ceil((0+1+1)/7) = 1
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		// 2024-01-06 Saturday: ceil((5+1+1)/7) = 1
		{time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC), 1},
		// 2024-01-07 Sunday: ceil((6+1+1)/7) = 2
		{time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC), 2},
		// 2024-12-31: ceil((365+1+1)/7) = 53
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 53},
		// 2023-01-01 is a Sunday (weekday 0): ceil((0+0+1)/7) = 1
		{time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, tc := range cases {
		if got := weekNumber(tc.date); got != tc.want {
			t.Errorf("weekNumber(%s): got %d, want %d", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestAnalyzeTimePatterns(t *testing.T) {
	t.Run("hourly and daily buckets", func(t *testing.T) {
		posts := []model.Post{
			postAt(time.Date(2024, time.June, 9, 9, 0, 0, 0, time.UTC)),  // Sunday 09
			postAt(time.Date(2024, time.June, 9, 9, 30, 0, 0, time.UTC)), // Sunday 09
			postAt(time.Date(2024, time.June, 10, 21, 0, 0, 0, time.UTC)), // Monday 21
			{ID: "no-time"},
		}
		tp := AnalyzeTimePatterns(posts)

		if tp.HourlyActivity[9] != 2 {
			t.Errorf("HourlyActivity[9]: got %d, want 2", tp.HourlyActivity[9])
		}
		if tp.HourlyActivity[21] != 1 {
			t.Errorf("HourlyActivity[21]: got %d, want 1", tp.HourlyActivity[21])
		}
		if tp.DailyActivity["الأحد"] != 2 {
			t.Errorf("DailyActivity[Sunday]: got %d, want 2", tp.DailyActivity["الأحد"])
		}
		if tp.DailyActivity["الاثنين"] != 1 {
			t.Errorf("DailyActivity[Monday]: got %d, want 1", tp.DailyActivity["الاثنين"])
		}
	})

	t.Run("peak hours top 5 descending, ascending hour on ties", func(t *testing.T) {
		var posts []model.Post
		for hour, count := range map[int]int{8: 3, 12: 3, 18: 5, 22: 1, 7: 2, 15: 2} {
			for i := 0; i < count; i++ {
				posts = append(posts, postAt(time.Date(2024, time.June, 9, hour, 0, 0, 0, time.UTC)))
			}
		}
		tp := AnalyzeTimePatterns(posts)

		if len(tp.PeakHours) != 5 {
			t.Fatalf("PeakHours: got %d entries, want 5", len(tp.PeakHours))
		}
		if tp.PeakHours[0].Hour != 18 || tp.PeakHours[0].Count != 5 {
			t.Errorf("PeakHours[0]: got %+v, want hour 18 count 5", tp.PeakHours[0])
		}
		// 8 and 12 tie at 3; ascending hour breaks the tie
		if tp.PeakHours[1].Hour != 8 || tp.PeakHours[2].Hour != 12 {
			t.Errorf("tied hours out of order: got %d then %d, want 8 then 12",
				tp.PeakHours[1].Hour, tp.PeakHours[2].Hour)
		}
	})

	t.Run("peak days top 3 descending", func(t *testing.T) {
		posts := []model.Post{
			postAt(time.Date(2024, time.June, 9, 9, 0, 0, 0, time.UTC)),  // Sunday
			postAt(time.Date(2024, time.June, 9, 10, 0, 0, 0, time.UTC)), // Sunday
			postAt(time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)), // Monday
			postAt(time.Date(2024, time.June, 11, 9, 0, 0, 0, time.UTC)), // Tuesday
			postAt(time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)), // Wednesday
		}
		tp := AnalyzeTimePatterns(posts)

		if len(tp.PeakDays) != 3 {
			t.Fatalf("PeakDays: got %d entries, want 3", len(tp.PeakDays))
		}
		if tp.PeakDays[0].Day != "الأحد" || tp.PeakDays[0].Count != 2 {
			t.Errorf("PeakDays[0]: got %+v, want Sunday count 2", tp.PeakDays[0])
		}
		// remaining days tie at 1; first corpus appearance wins
		if tp.PeakDays[1].Day != "الاثنين" || tp.PeakDays[2].Day != "الثلاثاء" {
			t.Errorf("tied days out of order: got %s then %s", tp.PeakDays[1].Day, tp.PeakDays[2].Day)
		}
	})

	t.Run("monthly bucket uses locale month name", func(t *testing.T) {
		posts := []model.Post{postAt(time.Date(2024, time.June, 9, 9, 0, 0, 0, time.UTC))}
		tp := AnalyzeTimePatterns(posts)
		if tp.MonthlyActivity["يونيو 2024"] != 1 {
			t.Errorf("MonthlyActivity: got %v, want 1 under يونيو 2024", tp.MonthlyActivity)
		}
	})
}
