package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"monitor-srv/internal/analytics/engine"
	"monitor-srv/internal/model"
)

// templateData is what the HTML template renders from.
type templateData struct {
	Title       string
	GeneratedAt string
	Report      engine.Report
}

var exportTemplate = template.Must(template.New("export").Funcs(template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(exportTemplateHTML))

// renderHTML renders the full report into a standalone RTL HTML page.
func renderHTML(exp model.Export, report engine.Report) ([]byte, error) {
	title := exp.Title
	if title == "" {
		title = "تقرير تحليلات المراقبة"
	}

	var buf bytes.Buffer
	err := exportTemplate.Execute(&buf, templateData{
		Title:       title,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Report:      report,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const exportTemplateHTML = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Segoe UI", Tahoma, sans-serif; margin: 2rem auto; max-width: 960px; color: #1c2733; }
h1 { border-bottom: 3px solid #2d6cdf; padding-bottom: .5rem; }
h2 { color: #2d6cdf; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #d4dbe3; padding: .4rem .7rem; text-align: right; }
th { background: #eef3fa; }
.meta { color: #66788a; font-size: .9rem; }
.cards { display: flex; flex-wrap: wrap; gap: 1rem; }
.card { background: #f6f8fb; border-radius: 8px; padding: 1rem 1.5rem; min-width: 140px; }
.card .num { font-size: 1.6rem; font-weight: bold; color: #2d6cdf; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">تاريخ الإنشاء: {{.GeneratedAt}}</p>

<h2>الإحصائيات الأساسية</h2>
<div class="cards">
<div class="card"><div class="num">{{.Report.Basic.TotalPosts}}</div>المنشورات</div>
<div class="card"><div class="num">{{.Report.Basic.TotalComments}}</div>التعليقات</div>
<div class="card"><div class="num">{{.Report.Basic.TotalReactions}}</div>التفاعلات</div>
<div class="card"><div class="num">{{.Report.Basic.TotalShares}}</div>المشاركات</div>
<div class="card"><div class="num">{{.Report.Basic.TotalUsers}}</div>المستخدمون</div>
<div class="card"><div class="num">{{pct .Report.Basic.EngagementRate}}</div>معدل التفاعل</div>
</div>

<h2>أنماط التوقيت</h2>
<table>
<tr><th>ساعة الذروة</th><th>عدد المنشورات</th></tr>
{{range .Report.TimePatterns.PeakHours}}<tr><td>{{.Hour}}:00</td><td>{{.Count}}</td></tr>{{end}}
</table>
<table>
<tr><th>يوم الذروة</th><th>عدد المنشورات</th></tr>
{{range .Report.TimePatterns.PeakDays}}<tr><td>{{.Day}}</td><td>{{.Count}}</td></tr>{{end}}
</table>

<h2>تحليل المحتوى</h2>
<table>
<tr><th>النوع</th><th>العدد</th></tr>
<tr><td>صور</td><td>{{.Report.Content.ContentTypes.Photo}}</td></tr>
<tr><td>فيديو</td><td>{{.Report.Content.ContentTypes.Video}}</td></tr>
<tr><td>روابط</td><td>{{.Report.Content.ContentTypes.Link}}</td></tr>
<tr><td>نصوص</td><td>{{.Report.Content.ContentTypes.Text}}</td></tr>
</table>
<table>
<tr><th>المشاعر</th><th>العدد</th></tr>
<tr><td>إيجابي</td><td>{{.Report.Content.Sentiment.Positive}}</td></tr>
<tr><td>سلبي</td><td>{{.Report.Content.Sentiment.Negative}}</td></tr>
<tr><td>مختلط</td><td>{{.Report.Content.Sentiment.Mixed}}</td></tr>
<tr><td>محايد</td><td>{{.Report.Content.Sentiment.Neutral}}</td></tr>
</table>
{{if .Report.Content.Hashtags}}
<table>
<tr><th>الهاشتاغ</th><th>التكرار</th><th>التفاعل</th></tr>
{{range .Report.Content.Hashtags}}<tr><td>{{.Tag}}</td><td>{{.Count}}</td><td>{{.Engagement}}</td></tr>{{end}}
</table>
{{end}}

<h2>تحليل المستخدمين</h2>
<table>
<tr><th>المستخدم</th><th>المنشورات</th><th>التعليقات</th><th>النقاط</th><th>التأثير</th></tr>
{{range .Report.Users.TopUsers}}<tr><td>{{.Name}}</td><td>{{.Posts}}</td><td>{{.Comments}}</td><td>{{.EngagementScore}}</td><td>{{pct .Influence}}</td></tr>{{end}}
</table>

<h2>تحليل التفاعل</h2>
<table>
<tr><th>نوع التفاعل</th><th>العدد</th></tr>
{{range $type, $count := .Report.Engagement.ReactionTypes}}<tr><td>{{$type}}</td><td>{{$count}}</td></tr>{{end}}
</table>
{{if .Report.Engagement.ViralContent}}
<table>
<tr><th>المنشور</th><th>النقاط</th><th>إجمالي التفاعل</th></tr>
{{range .Report.Engagement.ViralContent}}<tr><td>{{.Message}}</td><td>{{.Score}}</td><td>{{.TotalEngagement}}</td></tr>{{end}}
</table>
{{end}}

<h2>تحليل المصادر</h2>
<table>
<tr><th>المصدر</th><th>المنشورات</th><th>التفاعل</th></tr>
{{range .Report.Sources.Sources}}<tr><td>{{.Name}}</td><td>{{.Posts}}</td><td>{{.Engagement}}</td></tr>{{end}}
</table>

<h2>الاتجاهات</h2>
<table>
<tr><th>الموضوع</th><th>الإشارات</th><th>النمو</th></tr>
{{range .Report.Trends.TrendingTopics}}<tr><td>{{.Topic}}</td><td>{{.Mentions}}</td><td>{{pct .Growth}}%</td></tr>{{end}}
</table>

<h2>الأداء</h2>
<table>
<tr><th>أفضل المنشورات</th><th>التفاعل</th><th>النقاط</th></tr>
{{range .Report.Performance.BestPerformingPosts}}<tr><td>{{.Message}}</td><td>{{.Engagement}}</td><td>{{pct .Score}}</td></tr>{{end}}
</table>

<h2>التوقعات</h2>
<table>
<tr><th>الفترة</th><th>المنشورات المتوقعة</th></tr>
{{range .Report.Prediction.GrowthPrediction}}<tr><td>{{.Period}}</td><td>{{pct .Predicted}}</td></tr>{{end}}
</table>

<p class="meta">تم إنشاء هذا التقرير تلقائيًا بواسطة خدمة المراقبة.</p>
</body>
</html>
`
