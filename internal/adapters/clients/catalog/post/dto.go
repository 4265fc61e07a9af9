// Package post implements the Anti-Corruption Layer translators for the
// downstream catalog API's post resources, our articles.
package post

// PostDTO matches the downstream Post schema.
// Fields use int64 to match the OpenAPI spec's format: int64 annotation.
type PostDTO struct {
	ID        int64  `json:"id"`
	Headline  string `json:"headline"`
	Content   string `json:"content"`
	WriterID  int64  `json:"writer_id"`
	UpdatedAt string `json:"updated_at"`
}

// PostListResponseDTO matches the downstream PostListResponse schema.
type PostListResponseDTO struct {
	Posts []PostDTO `json:"posts"`
	Count int64     `json:"count"`
}
