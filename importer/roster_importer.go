package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/nonsonwune/srms/models"
)

// Column names expected in a roster file
const (
	ColumnRoll       = "roll"
	ColumnName       = "name"
	ColumnDepartment = "department"
	ColumnSemester   = "semester"
	ColumnCGPA       = "cgpa"
	ColumnGrade      = "grade"
)

// Error codes recorded against skipped rows
const (
	CodeShortRow      = "SHORT_ROW"
	CodeInvalidNumber = "INVALID_NUMBER"
	CodeRejected      = "REJECTED"
	CodeReadFailed    = "READ_FAILED"
)

// Fuzzy header matches at or below this confidence are ignored
const autoAcceptConfidence = 0.8

// ImportConfig holds the configuration for a roster import
type ImportConfig struct {
	SourceFile      string
	RequiredColumns []string
	ValidateOnly    bool // check every row and report without adding students
}

// DefaultRequiredColumns lists every student field in roster order
func DefaultRequiredColumns() []string {
	return []string{ColumnRoll, ColumnName, ColumnDepartment, ColumnSemester, ColumnCGPA, ColumnGrade}
}

// StudentAdder is the part of the backend the importer writes through
type StudentAdder interface {
	AddStudent(s models.Student) bool
}

// RosterImporter loads students from CSV into the directory, one row at a
// time, through the same insert path the console uses.
type RosterImporter struct {
	target        StudentAdder
	config        ImportConfig
	columnMapping map[string]int // required column -> header index
	log           *zap.Logger
}

func NewRosterImporter(target StudentAdder, config ImportConfig, log *zap.Logger) *RosterImporter {
	if len(config.RequiredColumns) == 0 {
		config.RequiredColumns = DefaultRequiredColumns()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RosterImporter{
		target: target,
		config: config,
		log:    log.Named("importer"),
	}
}

// ImportStudents is a convenience wrapper around RosterImporter.Import
func ImportStudents(ctx context.Context, target StudentAdder, reader *csv.Reader, config ImportConfig, log *zap.Logger) (*ImportStats, error) {
	return NewRosterImporter(target, config, log).Import(ctx, reader)
}

// ColumnMatch represents a potential column match with confidence score
type ColumnMatch struct {
	SourceColumn      string
	DestinationColumn string
	Confidence        float64
}

// findBestColumnMatch uses fuzzy matching to rank headers against a required column
func (ri *RosterImporter) findBestColumnMatch(required string, headers []string) []ColumnMatch {
	matches := make([]ColumnMatch, 0)
	normalizedRequired := normalizeColumn(required)

	for _, header := range headers {
		normalizedHeader := normalizeColumn(header)
		longest := max(len(normalizedRequired), len(normalizedHeader))
		if longest == 0 {
			continue
		}

		distance := levenshteinDistance(normalizedRequired, normalizedHeader)
		confidence := 1.0 - float64(distance)/float64(longest)
		if confidence > 0.6 {
			matches = append(matches, ColumnMatch{
				SourceColumn:      header,
				DestinationColumn: required,
				Confidence:        confidence,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// validateHeaders maps every required column onto a header index
func (ri *RosterImporter) validateHeaders(headers []string) error {
	missing := make([]string, 0)
	ri.columnMapping = make(map[string]int, len(ri.config.RequiredColumns))

	for _, required := range ri.config.RequiredColumns {
		if idx := getColumnIndex(headers, required); idx != -1 {
			ri.columnMapping[required] = idx
			continue
		}

		matches := ri.findBestColumnMatch(required, headers)
		if len(matches) > 0 && matches[0].Confidence > autoAcceptConfidence {
			idx := getColumnIndex(headers, matches[0].SourceColumn)
			ri.columnMapping[required] = idx
			ri.log.Info("mapped column by similarity",
				zap.String("column", required),
				zap.String("header", matches[0].SourceColumn),
				zap.Float64("confidence", matches[0].Confidence),
			)
			continue
		}
		missing = append(missing, required)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %v", missing)
	}
	return nil
}

// Import reads the header row, then converts and adds each data row.
// Rows that fail are recorded in the returned stats and skipped.
func (ri *RosterImporter) Import(ctx context.Context, reader *csv.Reader) (*ImportStats, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading headers: %w", err)
	}
	if err := ri.validateHeaders(headers); err != nil {
		return nil, fmt.Errorf("header validation failed: %w", err)
	}

	stats := NewImportStats(headers)
	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return stats, fmt.Errorf("error reading record: %w", err)
		}
		stats.TotalProcessed++
		if err != nil {
			stats.addFailure(parseErr.StartLine, record, &ImportError{Code: CodeReadFailed, Message: err.Error()})
			continue
		}
		line, _ := reader.FieldPos(0)

		student, err := ri.transformRecord(record)
		if err != nil {
			stats.addFailure(line, record, err)
			continue
		}
		if err := student.Validate(); err != nil {
			stats.addFailure(line, record, &ImportError{Code: CodeRejected, Message: err.Error()})
			continue
		}
		if ri.config.ValidateOnly {
			stats.ValidRecords++
			continue
		}
		if !ri.target.AddStudent(student) {
			stats.addFailure(line, record, &ImportError{
				Code:    CodeRejected,
				Message: "student was not added",
			})
			continue
		}
		stats.ValidRecords++
	}

	ri.log.Info("roster import finished",
		zap.String("file", ri.config.SourceFile),
		zap.Int("processed", stats.TotalProcessed),
		zap.Int("imported", stats.ValidRecords),
		zap.Int("skipped", stats.SkippedRecords),
		zap.Bool("validate_only", ri.config.ValidateOnly),
	)
	return stats, nil
}

func (ri *RosterImporter) field(record []string, column string) (string, bool) {
	idx, ok := ri.columnMapping[column]
	if !ok {
		return "", true
	}
	if idx >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[idx]), true
}

func (ri *RosterImporter) transformRecord(record []string) (models.Student, error) {
	var s models.Student
	values := make(map[string]string, len(ri.columnMapping))
	for column := range ri.columnMapping {
		v, ok := ri.field(record, column)
		if !ok {
			return s, &ImportError{
				Code:    CodeShortRow,
				Message: fmt.Sprintf("row has %d fields, column %q is missing", len(record), column),
			}
		}
		values[column] = v
	}

	var err error
	if s.Roll, err = transformInt(ColumnRoll, values[ColumnRoll]); err != nil {
		return s, err
	}
	if s.Semester, err = transformInt(ColumnSemester, values[ColumnSemester]); err != nil {
		return s, err
	}
	if s.CGPA, err = transformFloat(ColumnCGPA, values[ColumnCGPA]); err != nil {
		return s, err
	}
	s.Name = values[ColumnName]
	s.Department = values[ColumnDepartment]
	s.Grade = transformGrade(values[ColumnGrade])
	return s, nil
}

func transformInt(column, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ImportError{Code: CodeInvalidNumber, Message: fmt.Sprintf("%s: %q is not a whole number", column, s)}
	}
	return n, nil
}

func transformFloat(column, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ImportError{Code: CodeInvalidNumber, Message: fmt.Sprintf("%s: %q is not a number", column, s)}
	}
	return models.NarrowCGPA(f), nil
}

func transformGrade(s string) rune {
	if s == "" {
		return models.UnknownGrade
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// ImportError describes why a single row was skipped
type ImportError struct {
	Code    string
	Message string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// FailedImport is a row that could not be added
type FailedImport struct {
	RowNumber  int
	ErrorCode  string
	FailReason string
	RowData    []string
}

type ImportStats struct {
	Headers        []string
	TotalProcessed int
	ValidRecords   int
	SkippedRecords int
	ErrorsByType   map[string]int
	Failed         []FailedImport
}

func NewImportStats(headers []string) *ImportStats {
	return &ImportStats{
		Headers:      headers,
		ErrorsByType: make(map[string]int),
	}
}

func (s *ImportStats) AddError(errType string) {
	s.ErrorsByType[errType]++
	s.SkippedRecords++
}

func (s *ImportStats) addFailure(line int, record []string, err error) {
	code := CodeRejected
	var ie *ImportError
	if errors.As(err, &ie) {
		code = ie.Code
	}
	s.AddError(code)
	s.Failed = append(s.Failed, FailedImport{
		RowNumber:  line,
		ErrorCode:  code,
		FailReason: err.Error(),
		RowData:    record,
	})
}

// PrintSummary renders the import counts and errors by type
func (s *ImportStats) PrintSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetAutoFormatHeaders(false)
	table.Append([]string{"Total Records Processed", strconv.Itoa(s.TotalProcessed)})
	table.Append([]string{"Successfully Imported", strconv.Itoa(s.ValidRecords)})
	table.Append([]string{"Skipped Records", strconv.Itoa(s.SkippedRecords)})

	codes := make([]string, 0, len(s.ErrorsByType))
	for code := range s.ErrorsByType {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		table.Append([]string{"- " + code, strconv.Itoa(s.ErrorsByType[code])})
	}
	table.Render()
}

// SaveFailedRecords writes the skipped rows as CSV with the line number and
// error appended to each row.
func SaveFailedRecords(w io.Writer, stats *ImportStats) error {
	if len(stats.Failed) == 0 {
		return nil
	}

	writer := csv.NewWriter(w)
	header := append(append([]string{}, stats.Headers...), "Line", "Error")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing headers: %w", err)
	}

	for _, failed := range stats.Failed {
		row := append(append([]string{}, failed.RowData...), strconv.Itoa(failed.RowNumber), failed.FailReason)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func normalizeColumn(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

// getColumnIndex returns the index of a column in headers
func getColumnIndex(headers []string, columnName string) int {
	want := normalizeColumn(columnName)
	for i, header := range headers {
		if normalizeColumn(header) == want {
			return i
		}
	}
	return -1
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = min(
					matrix[i-1][j]+1,   // deletion
					matrix[i][j-1]+1,   // insertion
					matrix[i-1][j-1]+1, // substitution
				)
			}
		}
	}
	return matrix[len(s1)][len(s2)]
}
