package backend

import (
	"fmt"

	"github.com/nonsonwune/srms/models"
)

// Ledger is the append-only list of student queries
type Ledger struct {
	queries []models.Query
	nextID  int
}

func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// Append records a new pending query and returns its id. Rejected calls do
// not consume an id.
func (l *Ledger) Append(roll int, name, message string) (int, error) {
	if roll <= 0 {
		return 0, fmt.Errorf("roll must be positive, got %d: %w", roll, ErrValidation)
	}
	if name == "" {
		return 0, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if message == "" {
		return 0, fmt.Errorf("message is required: %w", ErrValidation)
	}

	q := models.Query{
		ID:      l.nextID,
		Roll:    roll,
		Name:    name,
		Message: message,
		Status:  models.QueryPending,
	}
	l.nextID++
	l.queries = append(l.queries, q)
	return q.ID, nil
}

// Transition moves a query to a new status
func (l *Ledger) Transition(id int, status models.QueryStatus) error {
	for i := range l.queries {
		if l.queries[i].ID != id {
			continue
		}
		current := l.queries[i].Status
		if !current.CanTransition(status) {
			return fmt.Errorf("query %d: %s -> %s: %w", id, current, status, ErrInvalidTransition)
		}
		l.queries[i].Status = status
		return nil
	}
	return fmt.Errorf("query %d: %w", id, ErrNotFound)
}

// All returns a copy of the ledger in insertion order
func (l *Ledger) All() []models.Query {
	out := make([]models.Query, len(l.queries))
	copy(out, l.queries)
	return out
}

func (l *Ledger) Len() int {
	return len(l.queries)
}
