package omada

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// pageQuery is the paging envelope every collection endpoint accepts.
type pageQuery struct {
	Page     int `url:"page"`
	PageSize int `url:"pageSize"`
}

// fetchAll walks a paged collection endpoint from page 1 and materializes
// the whole collection in server order. The most recently declared
// totalRows is authoritative when pages disagree. Termination is an empty
// page or the accumulated count reaching the last known total; a server
// that never sends a total and never an empty page is not bounded here,
// that is part of its paging contract.
func fetchAll[T any](ctx context.Context, s *Service, path string, extra url.Values) ([]T, error) {
	var (
		items []T
		total = int64(-1)
	)
	for page := 1; ; page++ {
		q, err := query.Values(pageQuery{Page: page, PageSize: s.pageSize})
		if err != nil {
			return nil, fmt.Errorf("encode page query: %w", err)
		}
		for k, vs := range extra {
			for _, v := range vs {
				q.Add(k, v)
			}
		}

		raw, err := s.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: q})
		if err != nil {
			return nil, err
		}

		var pr pageResult
		if err := json.Unmarshal(raw, &pr); err != nil {
			return nil, &NetworkError{Op: "decode page", Err: err}
		}

		var batch []T
		if len(pr.Data) > 0 {
			if err := json.Unmarshal(pr.Data, &batch); err != nil {
				return nil, &NetworkError{Op: "decode page data", Err: err}
			}
		}
		if len(batch) == 0 {
			return items, nil
		}
		items = append(items, batch...)

		if pr.TotalRows != nil {
			total = *pr.TotalRows
		}
		if total >= 0 && int64(len(items)) >= total {
			return items, nil
		}
	}
}
