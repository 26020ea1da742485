package models

import "strings"

// QueryStatus is the lifecycle state of a student query
type QueryStatus int

const (
	QueryPending QueryStatus = iota
	QueryResolved
	QueryRejected
)

func (s QueryStatus) String() string {
	switch s {
	case QueryPending:
		return "Pending"
	case QueryResolved:
		return "Resolved"
	case QueryRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether a query may move from s to next.
// Only pending queries can be closed, and closing is final.
func (s QueryStatus) CanTransition(next QueryStatus) bool {
	return s == QueryPending && (next == QueryResolved || next == QueryRejected)
}

// ParseQueryStatus accepts the display names, case-insensitively
func ParseQueryStatus(s string) (QueryStatus, bool) {
	for _, st := range []QueryStatus{QueryPending, QueryResolved, QueryRejected} {
		if strings.EqualFold(strings.TrimSpace(s), st.String()) {
			return st, true
		}
	}
	return QueryPending, false
}

// Query represents a free-text question submitted by a student
type Query struct {
	ID      int         `json:"id"`
	Roll    int         `json:"roll"`
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Status  QueryStatus `json:"status"`
}
