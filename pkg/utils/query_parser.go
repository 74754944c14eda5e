package utils

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ListParams porte la pagination et les filtres d'une requête de liste.
// Format attendu: ?search=...&filter[status]=en+service&sort[created_at]=desc&page=2&limit=50
type ListParams struct {
	Search    string
	Filters   map[string]string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
	Page      int
}

func ParseListParams(values url.Values) ListParams {
	params := ListParams{
		Filters:   make(map[string]string),
		Limit:     DefaultLimit,
		Page:      1,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				l = MaxLimit
			}
			params.Limit = l
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			params.Page = p
		}
	}
	params.Offset = (params.Page - 1) * params.Limit

	params.Search = values.Get("search")

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			params.Filters[key[7:len(key)-1]] = vals[0]
		}
		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			dir := strings.ToLower(vals[0])
			if dir == "asc" || dir == "desc" {
				params.SortBy = key[5 : len(key)-1]
				params.SortOrder = dir
			}
		}
	}

	return params
}
