package post

import (
	"time"

	"github.com/mwhitaker/statekit/internal/domain/catalog"
)

// ToDomainArticle converts a downstream PostDTO to a domain Article entity.
// Maps Headline to Title, Content to Body, WriterID to AuthorID, and parses
// the RFC3339 timestamp.
func ToDomainArticle(dto *PostDTO) catalog.Article {
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return catalog.Article{
		ID:        dto.ID,
		Title:     dto.Headline,
		Body:      dto.Content,
		AuthorID:  dto.WriterID,
		UpdatedAt: updatedAt,
	}
}

// ToDomainArticleList converts a downstream PostListResponseDTO to a slice of
// domain Article entities.
func ToDomainArticleList(dto PostListResponseDTO) []catalog.Article {
	articles := make([]catalog.Article, len(dto.Posts))
	for i := range dto.Posts {
		articles[i] = ToDomainArticle(&dto.Posts[i])
	}
	return articles
}
