// Package catalog holds the entities served by the downstream catalog API.
// They are the demo payloads flowing through the action pipeline into the
// normalized entity cache.
package catalog

import "time"

// Article is a single catalog article.
type Article struct {
	ID        int64
	Title     string
	Body      string
	AuthorID  int64
	UpdatedAt time.Time
}

// Author is the writer of one or more articles.
type Author struct {
	ID   int64
	Name string
}
