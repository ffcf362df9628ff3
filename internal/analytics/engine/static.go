package engine

// The tables below are fixed illustrative placeholders. They are
// returned verbatim in every report and are never derived from the
// corpus; keep them separate from the computed passes.

func staticDemographics() map[string]float64 {
	return map[string]float64{
		"18-24": 22.5,
		"25-34": 38.0,
		"35-44": 21.5,
		"45-54": 12.0,
		"55+":   6.0,
	}
}

func staticLocations() map[string]float64 {
	return map[string]float64{
		"السعودية": 35.0,
		"مصر":      25.0,
		"الإمارات": 15.0,
		"الكويت":   10.0,
		"أخرى":     15.0,
	}
}

func staticLanguages() map[string]float64 {
	return map[string]float64{
		"العربية":    82.0,
		"الإنجليزية": 15.0,
		"أخرى":       3.0,
	}
}

func staticRetentionRates() map[string]float64 {
	return map[string]float64{
		"daily":   45.0,
		"weekly":  65.0,
		"monthly": 80.0,
	}
}

func staticOptimization() Optimization {
	return Optimization{
		BestPostingTimes: []string{"18:00 - 21:00", "12:00 - 14:00", "أيام الجمعة والسبت"},
		BestFormats:      []string{"الصور مع نص قصير", "الفيديوهات القصيرة", "الأسئلة التفاعلية"},
		RecommendedActions: []string{
			"زيادة المحتوى المرئي",
			"النشر في أوقات الذروة",
			"التفاعل مع التعليقات",
			"استخدام الهاشتاجات الرائجة",
		},
	}
}

// Per-type hardcoded trend predictions.
var contentTrendPredictions = map[string]int{
	contentTypePhoto: 85,
	contentTypeVideo: 90,
	contentTypeText:  70,
	contentTypeLink:  60,
}

func staticEngagementForecast() map[string]float64 {
	return map[string]float64{
		"nextWeek":  12.5,
		"nextMonth": 18.0,
		"growth":    15.0,
	}
}

func staticTrendPredictions() []string {
	return []string{
		"زيادة متوقعة في المحتوى المرئي",
		"نمو التفاعل عبر الفيديوهات القصيرة",
		"اهتمام متزايد بالمواضيع التقنية",
	}
}

func staticRiskAnalysis() map[string]string {
	return map[string]string{
		"contentSaturation": "منخفض",
		"audienceChurn":     "متوسط",
		"engagementDrop":    "منخفض",
	}
}
