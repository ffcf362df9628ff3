package usecase

import (
	"strings"
	"testing"
	"time"

	"monitor-srv/internal/analytics/engine"
	"monitor-srv/internal/model"
)

func TestRenderHTML(t *testing.T) {
	report := engine.Report{
		GeneratedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Basic: engine.BasicStats{
			TotalPosts:     42,
			TotalComments:  120,
			TotalReactions: 300,
		},
	}

	t.Run("renders custom title", func(t *testing.T) {
		out, err := renderHTML(model.Export{Title: "My Report"}, report)
		if err != nil {
			t.Fatalf("renderHTML failed: %v", err)
		}

		html := string(out)
		if !strings.Contains(html, "<title>My Report</title>") {
			t.Error("rendered HTML missing custom title")
		}
		if !strings.Contains(html, `dir="rtl"`) {
			t.Error("rendered HTML should be RTL")
		}
	})

	t.Run("falls back to default title", func(t *testing.T) {
		out, err := renderHTML(model.Export{}, report)
		if err != nil {
			t.Fatalf("renderHTML failed: %v", err)
		}

		if !strings.Contains(string(out), "تقرير تحليلات المراقبة") {
			t.Error("rendered HTML missing default title")
		}
	})

	t.Run("includes basic stats", func(t *testing.T) {
		out, err := renderHTML(model.Export{Title: "t"}, report)
		if err != nil {
			t.Fatalf("renderHTML failed: %v", err)
		}

		html := string(out)
		if !strings.Contains(html, "42") {
			t.Error("rendered HTML missing total posts")
		}
		if !strings.Contains(html, "2024-03-15T10:00:00Z") {
			t.Error("rendered HTML missing generation timestamp")
		}
	})

	t.Run("escapes html in title", func(t *testing.T) {
		out, err := renderHTML(model.Export{Title: "<script>x</script>"}, report)
		if err != nil {
			t.Fatalf("renderHTML failed: %v", err)
		}

		if strings.Contains(string(out), "<script>x</script>") {
			t.Error("title should be escaped")
		}
	})

	t.Run("empty report still renders", func(t *testing.T) {
		out, err := renderHTML(model.Export{Title: "empty"}, engine.Report{})
		if err != nil {
			t.Fatalf("renderHTML failed: %v", err)
		}
		if len(out) == 0 {
			t.Error("rendered HTML should not be empty")
		}
	})
}
