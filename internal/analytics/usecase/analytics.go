package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"monitor-srv/internal/analytics"
	"monitor-srv/internal/analytics/engine"
	"monitor-srv/internal/analytics/repository/redis"
	"monitor-srv/internal/model"
	postRepo "monitor-srv/internal/post/repository"
)

// GetReport serves a full analytics report with a cache-aside snapshot.
// Snapshots are keyed by the normalized filter params so identical requests
// within the TTL hit Redis instead of recomputing the whole corpus.
func (uc *implUseCase) GetReport(ctx context.Context, sc model.Scope, input analytics.ReportInput) (engine.Report, error) {
	if err := validateReportInput(input); err != nil {
		return engine.Report{}, err
	}

	paramsKey := redis.ParamsKey(normalizeSourceIDs(input.SourceIDs), input.DateFrom, input.DateTo)

	if cached, err := uc.cache.GetReport(ctx, paramsKey); err == nil && cached != nil {
		return *cached, nil
	}

	posts, err := uc.loadCorpus(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetReport: loadCorpus failed: %v", err)
		return engine.Report{}, err
	}

	report := engine.Analyze(posts, time.Now())

	if err := uc.cache.SaveReport(ctx, paramsKey, report); err != nil {
		uc.l.Warnf(ctx, "analytics.usecase.GetReport: SaveReport failed: %v", err)
	}

	return report, nil
}

// Overview computes the dashboard summary sections concurrently over one
// corpus load.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.OverviewOutput, error) {
	if err := validateReportInput(input); err != nil {
		return analytics.OverviewOutput{}, err
	}

	posts, err := uc.loadCorpus(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.Overview: loadCorpus failed: %v", err)
		return analytics.OverviewOutput{}, err
	}

	var out analytics.OverviewOutput

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		out.Basic = engine.Basic(posts)
		return nil
	})
	eg.Go(func() error {
		out.Engagement = engine.AnalyzeEngagement(posts)
		return nil
	})
	eg.Go(func() error {
		out.Sources = engine.AnalyzeSources(posts)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return analytics.OverviewOutput{}, err
	}

	return out, nil
}

func (uc *implUseCase) loadCorpus(ctx context.Context, input analytics.ReportInput) ([]model.Post, error) {
	return uc.posts.ListPosts(ctx, postRepo.ListPostsOptions{
		SourceIDs: input.SourceIDs,
		DateFrom:  input.DateFrom,
		DateTo:    input.DateTo,
		Limit:     analytics.MaxCorpusSize,
	})
}

func validateReportInput(input analytics.ReportInput) error {
	if input.DateFrom != nil && input.DateTo != nil && input.DateFrom.After(*input.DateTo) {
		return analytics.ErrInvalidDateRange
	}
	if len(input.SourceIDs) > analytics.MaxSourceFilter {
		return analytics.ErrTooManySources
	}
	return nil
}

func normalizeSourceIDs(ids []string) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return sorted
}
