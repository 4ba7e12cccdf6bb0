package audit

// Bucket is one score-distribution band on the percent display scale.
type Bucket struct {
	Label string
	Count int
}

// Summary aggregates recorded scoring runs the way the recruiter analytics
// view presents them.
type Summary struct {
	Total           int
	Priority        int
	PriorityShare   float64
	AverageScore    float64
	AveragePriority float64
	AverageStandard float64
	Buckets         []Bucket
}

var bucketLabels = []string{"0–30%", "30–60%", "60–100%"}

// Summarize computes the analytics over the given entries.
func Summarize(entries []*Entry) Summary {
	summary := Summary{
		Buckets: []Bucket{
			{Label: bucketLabels[0]},
			{Label: bucketLabels[1]},
			{Label: bucketLabels[2]},
		},
	}

	var (
		sum         float64
		sumPriority float64
		sumStandard float64
		standard    int
	)

	for _, e := range entries {
		summary.Total++
		percent := e.Score * 100

		switch {
		case percent <= 30:
			summary.Buckets[0].Count++
		case percent <= 60:
			summary.Buckets[1].Count++
		default:
			summary.Buckets[2].Count++
		}

		sum += percent
		if e.Priority {
			summary.Priority++
			sumPriority += percent
		} else {
			standard++
			sumStandard += percent
		}
	}

	if summary.Total == 0 {
		return summary
	}

	summary.PriorityShare = float64(summary.Priority) / float64(summary.Total)
	summary.AverageScore = sum / float64(summary.Total)
	if summary.Priority > 0 {
		summary.AveragePriority = sumPriority / float64(summary.Priority)
	}
	if standard > 0 {
		summary.AverageStandard = sumStandard / float64(standard)
	}

	return summary
}
