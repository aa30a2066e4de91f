package analysis

import (
	"math"

	"github.com/pscheid92/tweetpulse/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// Column extracts one numeric series from a record.
type Column struct {
	Name  string
	Value func(r domain.Record) float64
}

var (
	LabelColumn    = Column{Name: "label", Value: func(r domain.Record) float64 { return float64(r.Label) }}
	LikesColumn    = Column{Name: "Likes", Value: func(r domain.Record) float64 { return float64(r.Likes) }}
	RetweetsColumn = Column{Name: "Retweets", Value: func(r domain.Record) float64 { return float64(r.Retweets) }}
	PositiveColumn = Column{Name: "pos", Value: func(r domain.Record) float64 { return r.Polarity.Pos }}
	NegativeColumn = Column{Name: "neg", Value: func(r domain.Record) float64 { return r.Polarity.Neg }}
)

// HeatmapColumns are the series of the correlation heatmap, in display order.
var HeatmapColumns = []Column{LikesColumn, RetweetsColumn, PositiveColumn, NegativeColumn}

// Correlate returns the Pearson coefficient of x and y.
// It is NaN when the series differ in length, have fewer than two points or one of them is constant.
func Correlate(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	if constant(x) || constant(y) {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

func constant(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}

// Series extracts col from every record.
func Series(records []domain.Record, col Column) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = col.Value(r)
	}
	return out
}

func LabelLikesCorrelation(records []domain.Record) float64 {
	return Correlate(Series(records, LabelColumn), Series(records, LikesColumn))
}

func LabelRetweetsCorrelation(records []domain.Record) float64 {
	return Correlate(Series(records, LabelColumn), Series(records, RetweetsColumn))
}

// CorrelationMatrix computes the pairwise coefficients of columns. The diagonal is 1 unless
// the column is constant, in which case its whole row and column are NaN.
func CorrelationMatrix(records []domain.Record, columns []Column) domain.CorrelationMatrix {
	series := make([][]float64, len(columns))
	names := make([]string, len(columns))
	for i, col := range columns {
		series[i] = Series(records, col)
		names[i] = col.Name
	}

	values := make([][]float64, len(columns))
	for i := range values {
		values[i] = make([]float64, len(columns))
	}
	for i := range columns {
		for j := i; j < len(columns); j++ {
			c := Correlate(series[i], series[j])
			if i == j && !math.IsNaN(c) {
				c = 1
			}
			values[i][j] = c
			values[j][i] = c
		}
	}

	return domain.CorrelationMatrix{Columns: names, Values: values}
}
