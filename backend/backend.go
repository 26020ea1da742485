package backend

import (
	"go.uber.org/zap"

	"github.com/nonsonwune/srms/models"
	"github.com/nonsonwune/srms/report"
)

// Backend owns the student directory and the query ledger for the life of
// the application. It is driven from a single control loop and is not safe
// for concurrent use.
type Backend struct {
	students *Directory
	queries  *Ledger
	log      *zap.Logger
}

type Option func(*Backend)

func WithLogger(log *zap.Logger) Option {
	return func(b *Backend) {
		if log != nil {
			b.log = log
		}
	}
}

func WithRollMode(mode RollMode) Option {
	return func(b *Backend) {
		b.students.rollMode = mode
	}
}

// New creates an empty backend
func New(opts ...Option) *Backend {
	b := &Backend{
		students: NewDirectory(RollFromLast),
		queries:  NewLedger(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.Named("backend")
	return b
}

// AddStudent inserts a new student record
func (b *Backend) AddStudent(s models.Student) bool {
	if err := b.students.Insert(s); err != nil {
		b.log.Warn("add student rejected", zap.Int("roll", s.Roll), zap.Error(err))
		return false
	}
	b.log.Info("student added", zap.Int("roll", s.Roll), zap.String("name", s.Name))
	return true
}

// UpdateStudent replaces the details of an existing student
func (b *Backend) UpdateStudent(s models.Student) bool {
	if err := b.students.Update(s); err != nil {
		b.log.Warn("update student failed", zap.Int("roll", s.Roll), zap.Error(err))
		return false
	}
	b.log.Info("student updated", zap.Int("roll", s.Roll))
	return true
}

func (b *Backend) DeleteStudent(roll int) bool {
	if err := b.students.Delete(roll); err != nil {
		b.log.Warn("delete student failed", zap.Int("roll", roll), zap.Error(err))
		return false
	}
	b.log.Info("student deleted", zap.Int("roll", roll))
	return true
}

// GetStudentByRoll returns the student card, or "Student not found."
func (b *Backend) GetStudentByRoll(roll int) string {
	s, err := b.students.FindByRoll(roll)
	if err != nil {
		return report.StudentNotFound()
	}
	return report.StudentText(s)
}

func (b *Backend) GetAllStudents() string {
	return report.StudentsText(b.students.All())
}

// SearchNameOrAdd looks a student up by exact name, adding a placeholder
// record when none exists.
func (b *Backend) SearchNameOrAdd(name string) (int, bool) {
	roll, added := b.students.FindOrCreateByName(name)
	if added {
		b.log.Info("student auto-added by name search",
			zap.Int("roll", roll),
			zap.String("name", name),
			zap.Stringer("roll_mode", b.students.rollMode),
		)
	}
	return roll, added
}

// AddQuery records a student query and returns its id, or -1 when the
// query is rejected.
func (b *Backend) AddQuery(roll int, name, message string) int {
	id, err := b.queries.Append(roll, name, message)
	if err != nil {
		b.log.Warn("add query rejected", zap.Int("roll", roll), zap.Error(err))
		return -1
	}
	b.log.Info("query submitted", zap.Int("id", id), zap.Int("roll", roll))
	return id
}

func (b *Backend) GetAllQueries() string {
	return report.QueriesText(b.queries.All())
}

// SetQueryStatus closes a pending query as resolved or rejected
func (b *Backend) SetQueryStatus(id int, status models.QueryStatus) error {
	if err := b.queries.Transition(id, status); err != nil {
		b.log.Warn("query status change failed", zap.Int("id", id), zap.Stringer("status", status), zap.Error(err))
		return err
	}
	b.log.Info("query status changed", zap.Int("id", id), zap.Stringer("status", status))
	return nil
}

// Students returns a snapshot of the roster
func (b *Backend) Students() []models.Student {
	return b.students.All()
}

// Queries returns a snapshot of the query ledger
func (b *Backend) Queries() []models.Query {
	return b.queries.All()
}
