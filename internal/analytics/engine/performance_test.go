package engine

import (
	"testing"

	"monitor-srv/internal/model"
)

func TestAnalyzePerformance(t *testing.T) {
	postWithShares := func(id string, shares int) model.Post {
		return model.Post{ID: id, Shares: &model.Shares{Count: shares}}
	}

	t.Run("score is engagement*2 + reach*0.1 with 10x reach", func(t *testing.T) {
		posts := []model.Post{postWithShares("p1", 10)}
		pa := AnalyzePerformance(posts)

		if len(pa.BestPerformingPosts) != 1 {
			t.Fatalf("BestPerformingPosts: got %d, want 1", len(pa.BestPerformingPosts))
		}
		best := pa.BestPerformingPosts[0]
		if best.Engagement != 10 {
			t.Errorf("Engagement: got %d, want 10", best.Engagement)
		}
		if best.Reach != 100 {
			t.Errorf("Reach: got %d, want 100", best.Reach)
		}
		// 10*2 + 100*0.1 = 30
		if best.Score != 30 {
			t.Errorf("Score: got %v, want 30", best.Score)
		}
	})

	t.Run("best top 10, worst bottom 5", func(t *testing.T) {
		var posts []model.Post
		for i := 0; i < 20; i++ {
			posts = append(posts, postWithShares("p", i))
		}
		pa := AnalyzePerformance(posts)

		if len(pa.BestPerformingPosts) != 10 {
			t.Errorf("BestPerformingPosts: got %d, want 10", len(pa.BestPerformingPosts))
		}
		if len(pa.WorstPerformingPosts) != 5 {
			t.Errorf("WorstPerformingPosts: got %d, want 5", len(pa.WorstPerformingPosts))
		}
		for i := 1; i < len(pa.BestPerformingPosts); i++ {
			if pa.BestPerformingPosts[i].Score > pa.BestPerformingPosts[i-1].Score {
				t.Errorf("best not descending at %d", i)
			}
		}
		for i := 1; i < len(pa.WorstPerformingPosts); i++ {
			if pa.WorstPerformingPosts[i].Score < pa.WorstPerformingPosts[i-1].Score {
				t.Errorf("worst not ascending at %d", i)
			}
		}
	})

	t.Run("low-score posts get canned issues", func(t *testing.T) {
		posts := []model.Post{
			postWithShares("cold", 0),  // score 0 < 5
			postWithShares("warm", 10), // score 30
		}
		pa := AnalyzePerformance(posts)
		for _, p := range pa.WorstPerformingPosts {
			if p.PostID == "cold" && len(p.Issues) == 0 {
				t.Error("low-score post missing issues annotation")
			}
			if p.PostID == "warm" && len(p.Issues) != 0 {
				t.Error("healthy post should not carry issues")
			}
		}
	})

	t.Run("optimization tables are static", func(t *testing.T) {
		pa := AnalyzePerformance(nil)
		if len(pa.Optimization.BestPostingTimes) == 0 ||
			len(pa.Optimization.BestFormats) == 0 ||
			len(pa.Optimization.RecommendedActions) == 0 {
			t.Error("optimization tables must be populated")
		}
	})
}

func TestPredict(t *testing.T) {
	t.Run("compounding growth on post count", func(t *testing.T) {
		posts := make([]model.Post, 100)
		prediction := Predict(posts)

		if len(prediction.GrowthPrediction) != 3 {
			t.Fatalf("GrowthPrediction: got %d periods, want 3", len(prediction.GrowthPrediction))
		}
		want := []float64{115, 132.25, 152.09}
		for i, w := range want {
			if prediction.GrowthPrediction[i].Predicted != w {
				t.Errorf("period %d: got %v, want %v", i, prediction.GrowthPrediction[i].Predicted, w)
			}
		}
	})

	t.Run("static sections present for empty corpus", func(t *testing.T) {
		prediction := Predict(nil)
		if len(prediction.EngagementForecast) == 0 ||
			len(prediction.TrendPredictions) == 0 ||
			len(prediction.RiskAnalysis) == 0 {
			t.Error("static sections must be populated")
		}
		for _, p := range prediction.GrowthPrediction {
			if p.Predicted != 0 {
				t.Errorf("empty corpus predicted: got %v, want 0", p.Predicted)
			}
		}
	})
}
