package writer

import "github.com/mwhitaker/statekit/internal/domain/catalog"

// ToDomainAuthor converts a downstream WriterDTO to a domain Author entity.
// Maps DisplayName to Name.
func ToDomainAuthor(dto *WriterDTO) catalog.Author {
	return catalog.Author{
		ID:   dto.ID,
		Name: dto.DisplayName,
	}
}
