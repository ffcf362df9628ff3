package engine

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/util"
)

// UnknownSource is the bucket for posts that arrive without a source
// name attached.
const UnknownSource = "غير معروف"

// AnalyzeSources groups the corpus by originating page/group. Overlap
// metrics are declared but intentionally left at zero.
func AnalyzeSources(posts []model.Post) SourceAnalysis {
	sources := make(map[string]*SourceStat)
	var order []string

	for _, p := range posts {
		name := p.SourceName
		if name == "" {
			name = UnknownSource
		}
		stat, ok := sources[name]
		if !ok {
			stat = &SourceStat{Name: name, Growth: make(map[string]int)}
			sources[name] = stat
			order = append(order, name)
		}

		stat.Posts++
		stat.Engagement += len(p.CommentList()) + p.ReactionSummaryCount()
		if p.CreatedTime != nil {
			stat.Growth[util.DateToStr(*p.CreatedTime)]++
		}
	}

	sa := SourceAnalysis{}
	for _, name := range order {
		sa.Sources = append(sa.Sources, *sources[name])
	}
	return sa
}
