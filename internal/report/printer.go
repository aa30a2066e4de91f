package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pscheid92/tweetpulse/internal/domain"
)

// Printer writes the textual report.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Print(summary *domain.Summary) error {
	bw := bufio.NewWriter(p.w)

	writeRecords(bw, "The most negative tweets are:", summary.MostNegative)
	writeRecords(bw, "The most positive tweets are:", summary.MostPositive)
	fmt.Fprintf(bw, "Correlation between Sentiment score  and quantity of likes on the tweet is: %s\n", FormatCoefficient(summary.LabelLikesCorr))
	fmt.Fprintf(bw, "Correlation between Sentiment score of the tweet and quantity of retweets is: %s\n", FormatCoefficient(summary.LabelRetweetsCorr))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeRecords prefixes each text with its zero-based data row index.
func writeRecords(w io.Writer, heading string, records []domain.Record) {
	fmt.Fprintln(w, heading)
	for _, r := range records {
		fmt.Fprintf(w, "%d  %s\n", r.Row-1, r.Text)
	}
}

// FormatCoefficient renders a correlation coefficient with the shortest exact representation.
// Undefined coefficients print as "nan".
func FormatCoefficient(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
