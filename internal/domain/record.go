package domain

import "context"

// Record is one row of the dataset: a single post and its engagement metrics.
// Polarity and Label are zero until the record has been scored and labelled.
type Record struct {
	Row      int // 1-based data row in the source file, header excluded
	Text     string
	HasText  bool // false when the text cell was empty (null)
	Likes    int64
	Retweets int64
	Date     string

	Polarity Polarity
	Label    int
}

// Columns names the dataset headers the loader maps onto Record fields.
type Columns struct {
	Text     string
	Likes    string
	Retweets string
	Date     string
}

// DefaultColumns matches the headers of the tweets export.
var DefaultColumns = Columns{
	Text:     "Tweets",
	Likes:    "Likes",
	Retweets: "Retweets",
	Date:     "Date",
}

type DatasetLoader interface {
	Load(ctx context.Context, path string) ([]Record, error)
}
