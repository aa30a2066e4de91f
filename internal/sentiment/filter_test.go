package sentiment

import (
	"testing"

	"github.com/pscheid92/tweetpulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func textRecords(texts ...string) []domain.Record {
	records := make([]domain.Record, len(texts))
	for i, text := range texts {
		records[i] = domain.Record{Row: i + 1, Text: text, HasText: true}
	}
	return records
}

func texts(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Text
	}
	return out
}

func TestIsMention(t *testing.T) {
	assert.True(t, IsMention("@joe hi"))
	assert.True(t, IsMention("mail me at elon@x.com"))
	assert.False(t, IsMention("hello world"))
	assert.False(t, IsMention(""))
}

func TestIsLink_CaseInsensitive(t *testing.T) {
	assert.True(t, IsLink("check https://x.com"))
	assert.True(t, IsLink("CHECK HTTPS://X.COM"))
	assert.True(t, IsLink("see Https://example.org/a"))
	assert.False(t, IsLink("plain http://x.com"))
	assert.False(t, IsLink("https:/ not quite"))
}

func TestFilter_DropsMentionsAndLinks(t *testing.T) {
	kept, stats := Filter(textRecords("hello world", "@joe hi", "check https://x.com", "great news"))

	assert.Equal(t, []string{"hello world", "great news"}, texts(kept))
	assert.Equal(t, FilterStats{Input: 4, Mentions: 1, Links: 1, Kept: 2}, stats)
}

func TestFilter_NullTextIsKept(t *testing.T) {
	records := []domain.Record{
		{Row: 1, HasText: false},
		{Row: 2, Text: "@someone", HasText: true},
	}

	kept, stats := Filter(records)

	assert.Len(t, kept, 1)
	assert.Equal(t, 1, kept[0].Row)
	assert.Equal(t, 1, stats.Kept)
}

func TestFilter_BothMarkersCountedAsMention(t *testing.T) {
	_, stats := Filter(textRecords("@joe look https://x.com"))
	assert.Equal(t, 1, stats.Mentions)
	assert.Equal(t, 0, stats.Links)
}

func TestFilter_PreservesOrderAndFields(t *testing.T) {
	records := []domain.Record{
		{Row: 7, Text: "first", HasText: true, Likes: 3, Retweets: 1, Date: "2022-01-01"},
		{Row: 8, Text: "@drop", HasText: true},
		{Row: 9, Text: "second", HasText: true, Likes: 5},
	}

	kept, _ := Filter(records)

	assert.Equal(t, []domain.Record{records[0], records[2]}, kept)
}

func TestFilter_Idempotent(t *testing.T) {
	inputs := [][]domain.Record{
		textRecords("hello world", "@joe hi", "check https://x.com", "great news"),
		textRecords("a@b", "HTTPS://caps", "http://insecure", "plain", ""),
		append(textRecords("x", "y @z"), domain.Record{Row: 99}),
		nil,
	}

	for _, in := range inputs {
		once, _ := Filter(in)
		twice, stats := Filter(once)
		assert.Equal(t, once, twice)
		assert.Equal(t, stats.Input, stats.Kept)
	}
}

func TestFilter_Empty(t *testing.T) {
	kept, stats := Filter(nil)
	assert.Empty(t, kept)
	assert.Equal(t, FilterStats{}, stats)
}
