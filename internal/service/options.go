package service

// QueryOptions carries the client's search, filter and sort selections for a
// list call. Filters map field names to exact values; inactive filters are
// simply absent.
type QueryOptions struct {
	Search  string
	Filters map[string]string
	SortBy  string
}
