// Package engine computes the analytics report over an in-memory post
// corpus. It is pure and stateless: one call runs nine independent
// passes over the same corpus and returns the aggregated snapshot.
// Safe for concurrent use on immutable input.
package engine

import (
	"time"

	"monitor-srv/internal/model"
)

// Analyze runs all nine passes over the corpus. now anchors the
// trend-analysis time windows so results stay deterministic.
func Analyze(posts []model.Post, now time.Time) Report {
	return Report{
		Basic:        Basic(posts),
		TimePatterns: AnalyzeTimePatterns(posts),
		Content:      AnalyzeContent(posts),
		Users:        AnalyzeUsers(posts),
		Engagement:   AnalyzeEngagement(posts),
		Sources:      AnalyzeSources(posts),
		Trends:       AnalyzeTrends(posts, now),
		Performance:  AnalyzePerformance(posts),
		Prediction:   Predict(posts),
		GeneratedAt:  now,
	}
}
