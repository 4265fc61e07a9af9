// Package writer implements the Anti-Corruption Layer translators for the
// downstream catalog API's writer resources, our authors.
package writer

// WriterDTO matches the downstream Writer schema.
type WriterDTO struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}
