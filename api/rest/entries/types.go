package entries

import (
	"codeberg.org/moneyapi/server/api/rest/pagination"
	"codeberg.org/moneyapi/server/moneyapi/entries"
)

// EntriesListResponse wraps a page of entries
type EntriesListResponse struct {
	Entries []entries.Entry `json:"entries"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

func newListResponse(list []entries.Entry, params pagination.Params) EntriesListResponse {
	return EntriesListResponse{
		Entries: list,
		Limit:   params.Limit,
		Offset:  params.Offset,
	}
}
