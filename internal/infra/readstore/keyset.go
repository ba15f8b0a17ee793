package readstore

import (
	"syncro-backend/internal/pkg/pgconv"
	"syncro-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// keysetParams maps an optional page position to nullable query args; nil selects the first page.
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.Int8) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.Int8{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgtype.Int8{Int64: after.ID, Valid: true}
}
