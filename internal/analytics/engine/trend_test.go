package engine

import (
	"testing"
	"time"

	"monitor-srv/internal/model"
)

func TestAnalyzeTrends(t *testing.T) {
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-2 * 24 * time.Hour)
	old := now.Add(-20 * 24 * time.Hour)
	ancient := now.Add(-60 * 24 * time.Hour)

	t.Run("topic growth is recent share capped at 100", func(t *testing.T) {
		posts := []model.Post{
			{Message: "مباراة كرة القدم", CreatedTime: &recent},
			{Message: "هدف في المباراة", CreatedTime: &old},
		}
		ta := AnalyzeTrends(posts, now)

		var sports *TopicTrend
		for i := range ta.TrendingTopics {
			if ta.TrendingTopics[i].Topic == "sports" {
				sports = &ta.TrendingTopics[i]
			}
		}
		if sports == nil {
			t.Fatalf("sports topic missing: %+v", ta.TrendingTopics)
		}
		if sports.Mentions != 2 {
			t.Errorf("Mentions: got %d, want 2", sports.Mentions)
		}
		if sports.Growth != 50 {
			t.Errorf("Growth: got %v, want 50", sports.Growth)
		}
	})

	t.Run("emerging hashtag heuristics", func(t *testing.T) {
		posts := []model.Post{
			{Message: "#تقنية اليوم"},
			{Message: "اخبار #تقنية"},
			{Message: "صباح #الخير"},
		}
		ta := AnalyzeTrends(posts, now)

		byTag := map[string]HashtagTrend{}
		for _, h := range ta.EmergingHashtags {
			byTag[h.Tag] = h
		}
		repeated := byTag["#تقنية"]
		if repeated.Growth != 40 {
			// count 2 > 1: growth = 2*20
			t.Errorf("repeated growth: got %d, want 40", repeated.Growth)
		}
		if repeated.Potential != 30 {
			t.Errorf("repeated potential: got %d, want 30", repeated.Potential)
		}
		single := byTag["#الخير"]
		if single.Growth != 10 {
			t.Errorf("single growth: got %d, want 10", single.Growth)
		}
		if ta.EmergingHashtags[0].Tag != "#تقنية" {
			t.Errorf("sorted by growth: got %s first", ta.EmergingHashtags[0].Tag)
		}
	})

	t.Run("potential caps at 100", func(t *testing.T) {
		var posts []model.Post
		for i := 0; i < 8; i++ {
			posts = append(posts, model.Post{Message: "#شائع"})
		}
		ta := AnalyzeTrends(posts, now)
		if len(ta.EmergingHashtags) != 1 || ta.EmergingHashtags[0].Potential != 100 {
			t.Errorf("Potential: got %+v, want cap 100", ta.EmergingHashtags)
		}
	})

	t.Run("tied topic order is stable across runs", func(t *testing.T) {
		// One post matching several topics: every mention count ties,
		// so ordering falls entirely on the insertion-order tie-break.
		posts := []model.Post{
			{Message: "برمجة مباراة طعام سفر عائلة صلاة", CreatedTime: &recent},
		}
		first := AnalyzeTrends(posts, now)
		if len(first.TrendingTopics) < 2 {
			t.Fatalf("expected several tied topics, got %+v", first.TrendingTopics)
		}
		for run := 0; run < 50; run++ {
			ta := AnalyzeTrends(posts, now)
			if len(ta.TrendingTopics) != len(first.TrendingTopics) {
				t.Fatalf("run %d: got %d topics, want %d", run, len(ta.TrendingTopics), len(first.TrendingTopics))
			}
			for i := range first.TrendingTopics {
				if ta.TrendingTopics[i].Topic != first.TrendingTopics[i].Topic {
					t.Fatalf("run %d: topic order diverged at %d: got %s, want %s",
						run, i, ta.TrendingTopics[i].Topic, first.TrendingTopics[i].Topic)
				}
			}
		}
	})

	t.Run("content trends use the 30-day window", func(t *testing.T) {
		posts := []model.Post{
			{FullPicture: "x", CreatedTime: &recent},
			{FullPicture: "x", CreatedTime: &ancient},
		}
		ta := AnalyzeTrends(posts, now)

		if len(ta.ContentTrends) != 4 {
			t.Fatalf("ContentTrends: got %d rows, want 4", len(ta.ContentTrends))
		}
		photo := ta.ContentTrends[0]
		if photo.Type != contentTypePhoto {
			t.Fatalf("first row: got %s, want photo", photo.Type)
		}
		if photo.Count != 2 {
			t.Errorf("photo count: got %d, want 2", photo.Count)
		}
		if photo.Growth != 50 {
			t.Errorf("photo growth: got %v, want 50", photo.Growth)
		}
		if photo.Prediction != 85 {
			t.Errorf("photo prediction: got %d, want 85", photo.Prediction)
		}
		for _, row := range ta.ContentTrends {
			if row.Type == contentTypeVideo && row.Prediction != 90 {
				t.Errorf("video prediction: got %d, want 90", row.Prediction)
			}
		}
	})
}
