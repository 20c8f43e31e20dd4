package analytics

import (
	"fmt"
	"time"
)

type RatingBucket struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentageOfTotal"`
}

type RatingTrendPoint struct {
	Label         string  `json:"label"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type SatisfactionReport struct {
	AverageRating       float64            `json:"averageRating"`
	TotalReviews        int                `json:"totalReviews"`
	RatingChange        float64            `json:"ratingChange"`
	RatingsDistribution []RatingBucket     `json:"ratingsDistribution"`
	RatingTrend         []RatingTrendPoint `json:"ratingTrend"`
}

func validReview(review Review) bool {
	return review.Rating >= 1 && review.Rating <= 5 && !review.Timestamp.IsZero()
}

// AnalyzeSatisfaction computes the rating dashboard. Reviews with out-of-range
// ratings or unusable timestamps are dropped silently, matching how the order
// side treats malformed records.
func AnalyzeSatisfaction(reviews []Review, now time.Time) SatisfactionReport {
	report := SatisfactionReport{}

	thisMonth := MonthRange(now, 0)
	lastMonth := MonthRange(now, 1)
	months := LastNMonths(now, monthlySeriesLength)

	var ratingCounts [6]int // index by rating, 1..5
	ratingSum := 0
	thisMonthSum, thisMonthCount := 0, 0
	lastMonthSum, lastMonthCount := 0, 0
	trendSums := make([]int, len(months))
	trendCounts := make([]int, len(months))

	for _, review := range reviews {
		if !validReview(review) {
			continue
		}
		report.TotalReviews += 1
		ratingSum += review.Rating
		ratingCounts[review.Rating] += 1

		if thisMonth.Contains(review.Timestamp) {
			thisMonthSum += review.Rating
			thisMonthCount += 1
		} else if lastMonth.Contains(review.Timestamp) {
			lastMonthSum += review.Rating
			lastMonthCount += 1
		}
		for i, month := range months {
			if month.Contains(review.Timestamp) {
				trendSums[i] += review.Rating
				trendCounts[i] += 1
				break
			}
		}
	}

	if report.TotalReviews > 0 {
		report.AverageRating = Round1(float64(ratingSum) / float64(report.TotalReviews))
	}

	if thisMonthCount > 0 && lastMonthCount > 0 {
		thisAvg := float64(thisMonthSum) / float64(thisMonthCount)
		lastAvg := float64(lastMonthSum) / float64(lastMonthCount)
		report.RatingChange = Round1(thisAvg - lastAvg)
	}

	report.RatingsDistribution = make([]RatingBucket, 0, 5)
	for rating := 5; rating >= 1; rating-- {
		label := fmt.Sprintf("%d stars", rating)
		if rating == 1 {
			label = "1 star"
		}
		report.RatingsDistribution = append(report.RatingsDistribution, RatingBucket{
			Label:      label,
			Count:      ratingCounts[rating],
			Percentage: Round1(SafePercentage(float64(ratingCounts[rating]), float64(report.TotalReviews))),
		})
	}

	report.RatingTrend = make([]RatingTrendPoint, 0, len(months))
	for i, month := range months {
		point := RatingTrendPoint{Label: month.Label, ReviewCount: trendCounts[i]}
		if trendCounts[i] > 0 {
			point.AverageRating = Round1(float64(trendSums[i]) / float64(trendCounts[i]))
		}
		report.RatingTrend = append(report.RatingTrend, point)
	}

	return report
}
