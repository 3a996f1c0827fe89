package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// QueryBuilder builds PostgREST requests against one table. Filters use the
// PostgREST operator syntax (col=eq.value).
type QueryBuilder struct {
	client  *Client
	table   string
	columns string
	filters url.Values
	orders  []string
	limit   int
}

// From starts a query builder for a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{client: c, table: table, filters: url.Values{}}
}

// Select specifies columns, including embedded resources.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	q.filters.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Order adds an ORDER BY clause.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.orders = append(q.orders, column+"."+dir)
	return q
}

// Limit sets the LIMIT.
func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.limit = n
	return q
}

func (q *QueryBuilder) query(withSelect bool) string {
	params := url.Values{}
	for k, vs := range q.filters {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	if withSelect && q.columns != "" {
		params.Set("select", q.columns)
	}
	if len(q.orders) > 0 {
		params.Set("order", strings.Join(q.orders, ","))
	}
	if q.limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", q.limit))
	}
	return params.Encode()
}

func (q *QueryBuilder) path() string {
	return "/rest/v1/" + url.PathEscape(q.table)
}

// Execute runs a SELECT and returns the JSON array body.
func (q *QueryBuilder) Execute(ctx context.Context) ([]byte, error) {
	body, _, err := q.client.do(ctx, "store", request{
		method: http.MethodGet,
		path:   q.path(),
		query:  q.query(true),
		apiKey: q.client.serviceKey,
	})
	return body, err
}

// Insert posts one row and returns the inserted representation. Extra Prefer
// directives (e.g. resolution=merge-duplicates) are appended.
func (q *QueryBuilder) Insert(ctx context.Context, row any, prefer ...string) ([]byte, error) {
	prefs := append([]string{"return=representation"}, prefer...)
	body, _, err := q.client.do(ctx, "store", request{
		method:  http.MethodPost,
		path:    q.path(),
		query:   q.query(true),
		apiKey:  q.client.serviceKey,
		headers: map[string]string{"Prefer": strings.Join(prefs, ",")},
		body:    row,
	})
	return body, err
}

// Update patches every row matching the filters and returns the updated
// representations.
func (q *QueryBuilder) Update(ctx context.Context, patch any) ([]byte, error) {
	body, _, err := q.client.do(ctx, "store", request{
		method:  http.MethodPatch,
		path:    q.path(),
		query:   q.query(true),
		apiKey:  q.client.serviceKey,
		headers: map[string]string{"Prefer": "return=representation"},
		body:    patch,
	})
	return body, err
}
