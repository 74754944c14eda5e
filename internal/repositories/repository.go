package repositories

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mapNoRows convertit pgx.ErrNoRows en ErrNotFound du domaine.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}

// applyListParams ajoute recherche, filtres, tri et pagination à une requête
// de liste. Les colonnes autorisées sont explicites: tout le reste est ignoré.
func applyListParams(b sq.SelectBuilder, p utils.ListParams, searchCols []string, filterCols map[string]string, sortCols map[string]string) sq.SelectBuilder {
	if p.Search != "" && len(searchCols) > 0 {
		or := make(sq.Or, 0, len(searchCols))
		for _, col := range searchCols {
			or = append(or, sq.ILike{col: "%" + p.Search + "%"})
		}
		b = b.Where(or)
	}

	for key, val := range p.Filters {
		if col, ok := filterCols[key]; ok {
			b = b.Where(sq.Eq{col: val})
		}
	}

	orderCol := "created_at"
	if col, ok := sortCols[p.SortBy]; ok {
		orderCol = col
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}

	return b.OrderBy(orderCol + " " + dir).
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset))
}

// applyCountParams reprend recherche et filtres sans tri ni pagination.
func applyCountParams(b sq.SelectBuilder, p utils.ListParams, searchCols []string, filterCols map[string]string) sq.SelectBuilder {
	if p.Search != "" && len(searchCols) > 0 {
		or := make(sq.Or, 0, len(searchCols))
		for _, col := range searchCols {
			or = append(or, sq.ILike{col: "%" + p.Search + "%"})
		}
		b = b.Where(or)
	}
	for key, val := range p.Filters {
		if col, ok := filterCols[key]; ok {
			b = b.Where(sq.Eq{col: val})
		}
	}
	return b
}
