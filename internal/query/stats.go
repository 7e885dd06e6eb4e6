package query

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/forkknife/internal/menu"
)

// CourseAverage is the mean price of one course.
type CourseAverage struct {
	Course  menu.Course  `json:"course"`
	Count   int          `json:"count"`
	Average *apd.Decimal `json:"-"`
	Display string       `json:"average"`
}

// Statistics summarises a snapshot.
type Statistics struct {
	TotalCount           int             `json:"total_count"`
	AveragePriceByCourse []CourseAverage `json:"average_price_by_course"`
}

// Average returns the entry for course c.
func (s Statistics) Average(c menu.Course) (CourseAverage, bool) {
	for _, a := range s.AveragePriceByCourse {
		if a.Course == c {
			return a, true
		}
	}
	return CourseAverage{}, false
}

// Format renders the average for c with two decimals, "0.00" when the
// course is unknown or empty.
func (s Statistics) Format(c menu.Course) string {
	if a, ok := s.Average(c); ok {
		return a.Display
	}
	return "0.00"
}

// sumContext holds any sum of menu prices exactly: each price has at most
// MaxPriceIntegerDigits+MaxPriceFractionDigits digits, and a count fits in
// 19 digits.
var sumContext = menu.PriceContext.WithPrecision(
	menu.MaxPriceIntegerDigits + menu.MaxPriceFractionDigits + 19)

// quoContext truncates the quotient at PriceContext's precision. An
// inexact quotient is then strictly above the truncated value and never
// equal to a half-cent boundary, so the half-up quantisation in
// menu.FormatFixed rounds it the same way as the exact value.
var quoContext = func() *apd.Context {
	ctx := menu.PriceContext.WithPrecision(menu.PriceContext.Precision)
	ctx.Rounding = apd.RoundDown
	return ctx
}()

// ComputeStatistics counts dishes and averages prices per course.
//
// A course with no dishes averages exactly 0. Sums are exact; quotients
// are truncated at 34 digits and the display form is quantised to two
// places with round-half-up.
func ComputeStatistics(s menu.Snapshot) Statistics {
	type acc struct {
		sum   apd.Decimal
		count int
	}
	totals := make(map[menu.Course]*acc, 3)
	for _, c := range menu.Courses() {
		totals[c] = &acc{}
	}

	for i := 0; i < s.Len(); i++ {
		d := s.At(i)
		a, ok := totals[d.Course]
		if !ok {
			continue
		}
		// Never inexact: see sumContext.
		_, _ = sumContext.Add(&a.sum, &a.sum, d.Price.Decimal())
		a.count++
	}

	stats := Statistics{
		TotalCount:           s.Len(),
		AveragePriceByCourse: make([]CourseAverage, 0, len(totals)),
	}
	for _, c := range menu.Courses() {
		a := totals[c]
		avg := new(apd.Decimal)
		if a.count > 0 {
			_, _ = quoContext.Quo(avg, &a.sum, apd.New(int64(a.count), 0))
		}
		stats.AveragePriceByCourse = append(stats.AveragePriceByCourse, CourseAverage{
			Course:  c,
			Count:   a.count,
			Average: avg,
			Display: menu.FormatFixed(avg),
		})
	}
	return stats
}
