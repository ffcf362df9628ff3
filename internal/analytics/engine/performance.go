package engine

import (
	"sort"

	"monitor-srv/internal/model"
)

const (
	bestPostsSize     = 10
	worstPostsSize    = 5
	lowScoreThreshold = 5
	reachMultiplier   = 10
	performanceMsgLen = 100
)

// Canned diagnostics attached to low-scoring posts.
var lowScoreIssues = []string{
	"تفاعل منخفض",
	"محتوى غير جذاب",
	"توقيت نشر غير مناسب",
}

// AnalyzePerformance ranks posts by a weighted engagement/reach score.
// Reach is a fixed 10x engagement proxy, not a measured metric.
func AnalyzePerformance(posts []model.Post) PerformanceAnalysis {
	pa := PerformanceAnalysis{Optimization: staticOptimization()}

	scored := make([]PostPerformance, 0, len(posts))
	for _, p := range posts {
		engagement := engagementTotal(p)
		reach := engagement * reachMultiplier
		scored = append(scored, PostPerformance{
			PostID:     p.ID,
			Message:    snippet(p.Message, performanceMsgLen),
			Engagement: engagement,
			Reach:      reach,
			Score:      float64(engagement)*2 + float64(reach)*0.1,
		})
	}

	best := make([]PostPerformance, len(scored))
	copy(best, scored)
	sort.SliceStable(best, func(i, j int) bool { return best[i].Score > best[j].Score })
	if len(best) > bestPostsSize {
		best = best[:bestPostsSize]
	}
	pa.BestPerformingPosts = best

	worst := make([]PostPerformance, len(scored))
	copy(worst, scored)
	sort.SliceStable(worst, func(i, j int) bool { return worst[i].Score < worst[j].Score })
	if len(worst) > worstPostsSize {
		worst = worst[:worstPostsSize]
	}
	for i := range worst {
		if worst[i].Score < lowScoreThreshold {
			worst[i].Issues = lowScoreIssues
		}
	}
	pa.WorstPerformingPosts = worst

	return pa
}

const growthRate = 1.15

// Predict applies the fixed 15%-per-period compounding formula to the
// current post count; everything else is a static illustrative table.
func Predict(posts []model.Post) Prediction {
	current := float64(len(posts))
	periods := []string{"الأسبوع القادم", "الشهر القادم", "الربع القادم"}

	prediction := Prediction{
		EngagementForecast: staticEngagementForecast(),
		TrendPredictions:   staticTrendPredictions(),
		RiskAnalysis:       staticRiskAnalysis(),
	}

	predicted := current
	for _, period := range periods {
		predicted *= growthRate
		prediction.GrowthPrediction = append(prediction.GrowthPrediction, PeriodForecast{
			Period:    period,
			Predicted: round2(predicted),
		})
	}

	return prediction
}
