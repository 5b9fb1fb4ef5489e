package entity

import "time"

// MaxArticles is the number of news items shown for a ticker.
const MaxArticles = 5

// Article is a news headline returned by the news provider.
type Article struct {
	Title       string
	URL         string
	SourceName  string
	PublishedAt time.Time
	Description string // may be empty
}
