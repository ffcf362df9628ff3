package engine

import (
	"sort"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/util"
)

const topUsersSize = 20

// AnalyzeUsers builds per-author activity records, merging post and
// comment authorship under one id, and ranks them by total activity.
func AnalyzeUsers(posts []model.Post) UserAnalysis {
	ua := UserAnalysis{
		UserGrowth:     make(map[string]int),
		Demographics:   staticDemographics(),
		Locations:      staticLocations(),
		Languages:      staticLanguages(),
		RetentionRates: staticRetentionRates(),
	}

	users := make(map[string]*UserStat)
	var order []string

	record := func(id, name string) *UserStat {
		u, ok := users[id]
		if !ok {
			u = &UserStat{UserID: id, Name: name}
			users[id] = u
			order = append(order, id)
		}
		if u.Name == "" {
			u.Name = name
		}
		return u
	}

	for _, p := range posts {
		if id := p.AuthorID(); id != "" {
			record(id, p.AuthorName()).Posts++
		}
		for _, c := range p.CommentList() {
			if c.From != nil && c.From.ID != "" {
				record(c.From.ID, c.From.Name).Comments++
			}
		}
		if p.CreatedTime != nil {
			// cumulative distinct authors as of this date, last
			// value per date wins
			ua.UserGrowth[util.DateToStr(*p.CreatedTime)] = len(users)
		}
	}

	ua.TotalUsers = len(users)

	ranked := make([]UserStat, 0, len(users))
	for _, id := range order {
		u := users[id]
		u.TotalActivity = u.Posts + u.Comments + u.Reactions
		u.EngagementScore = u.Posts*3 + u.Comments*2 + u.Reactions
		divisor := u.Posts
		if divisor < 1 {
			divisor = 1
		}
		u.Influence = round2(float64(u.EngagementScore) / float64(divisor))
		ranked = append(ranked, *u)

		switch {
		case u.TotalActivity > 10:
			ua.Segments.HighlyActive++
		case u.TotalActivity >= 3:
			ua.Segments.ModeratelyActive++
		case u.TotalActivity >= 1:
			ua.Segments.LowActivity++
		default:
			ua.Segments.Inactive++
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalActivity > ranked[j].TotalActivity
	})
	if len(ranked) > topUsersSize {
		ranked = ranked[:topUsersSize]
	}
	ua.TopUsers = ranked

	return ua
}
