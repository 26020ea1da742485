package console

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/nonsonwune/srms/auth"
	"github.com/nonsonwune/srms/backend"
	"github.com/nonsonwune/srms/importer"
	"github.com/nonsonwune/srms/models"
	"github.com/nonsonwune/srms/report"
)

// errQuit ends the session loop
var errQuit = errors.New("quit")

// maxLineSize bounds a single line of input
const maxLineSize = 1 << 20

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	section = color.New(color.FgYellow)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	badge   = color.New(color.FgHiYellow)
)

// Console is the interactive terminal front-end. It owns no records of its
// own; everything it shows comes from the backend.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	backend *backend.Backend
	auth    *auth.Authenticator
	log     *zap.Logger
	session *auth.Session

	// FailedImportDir is where rows rejected by an import are written
	FailedImportDir string
}

func New(in io.Reader, out io.Writer, b *backend.Backend, a *auth.Authenticator, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Console{
		in:              scanner,
		out:             out,
		backend:         b,
		auth:            a,
		log:             log.Named("console"),
		FailedImportDir: "failed_imports",
	}
}

// Run shows the login surface and then the main menu until the user exits
// or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := c.login(); err != nil {
			if errors.Is(err, errQuit) {
				return c.inputErr()
			}
			return err
		}

		err := c.mainMenu(ctx)
		if errors.Is(err, errQuit) {
			if err := c.inputErr(); err != nil {
				return err
			}
			success.Fprintln(c.out, "Thank you for using SRMS!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// inputErr reports why reading stopped, or nil at a clean end of input
func (c *Console) inputErr() error {
	if err := c.in.Err(); err != nil {
		failure.Fprintf(c.out, "Error reading input: %v\n", err)
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (c *Console) login() error {
	for {
		heading.Fprintln(c.out, "\n=== Admin Login - SRMS ===")
		user, ok := c.prompt("Username (q to quit): ")
		if !ok || user == "q" {
			return errQuit
		}
		pass, ok := c.prompt("Password: ")
		if !ok {
			return errQuit
		}

		session, err := c.auth.Login(user, pass)
		if err != nil {
			failure.Fprintln(c.out, "Invalid credentials. Try again.")
			continue
		}
		c.session = session
		success.Fprintln(c.out, "Login successful!")
		return nil
	}
}

func (c *Console) mainMenu(ctx context.Context) error {
	for {
		c.displayMenu()
		choice, ok := c.readLine()
		if !ok {
			return errQuit
		}

		switch choice {
		case "1":
			c.addStudent()
		case "2":
			c.updateStudent()
		case "3":
			c.deleteStudent()
		case "4":
			c.viewStudents()
		case "5":
			c.lookupStudent()
		case "6":
			c.searchName()
		case "7":
			c.submitQuery()
		case "8":
			c.viewQueries()
		case "9":
			c.closeQuery()
		case "10":
			c.studentBoard()
		case "11":
			c.statusSummary()
		case "12":
			c.importStudents(ctx)
		case "13":
			c.exportStudents()
		case "14":
			c.log.Info("logout", zap.String("session", c.session.ID.String()))
			c.session = nil
			return nil
		case "15":
			return errQuit
		default:
			failure.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Console) displayMenu() {
	heading.Fprintln(c.out, "\n=== SRMS - Student Record Management System ===")
	if c.session != nil {
		badge.Fprintln(c.out, c.session.AdminID)
	}
	section.Fprintln(c.out, "-- Admin - Student Records --")
	fmt.Fprintln(c.out, "1. Add Student")
	fmt.Fprintln(c.out, "2. Update Student")
	fmt.Fprintln(c.out, "3. Delete Student")
	fmt.Fprintln(c.out, "4. View All Students")
	fmt.Fprintln(c.out, "5. Lookup Student by Roll")
	fmt.Fprintln(c.out, "6. Search / Auto-add by Name")
	section.Fprintln(c.out, "-- Student - Queries --")
	fmt.Fprintln(c.out, "7. Submit Query")
	fmt.Fprintln(c.out, "8. View All Queries")
	fmt.Fprintln(c.out, "9. Resolve / Reject Query")
	section.Fprintln(c.out, "-- Reports --")
	fmt.Fprintln(c.out, "10. Student Board")
	fmt.Fprintln(c.out, "11. Status Summary")
	fmt.Fprintln(c.out, "12. Import Students from CSV")
	fmt.Fprintln(c.out, "13. Export Students to XLSX")
	fmt.Fprintln(c.out, "14. Logout")
	fmt.Fprintln(c.out, "15. Exit")
	fmt.Fprint(c.out, "\nEnter your choice (1-15): ")
}

// studentForm is the raw text of the admin student fields
type studentForm struct {
	roll, name, dept, sem, cgpa, grade string
}

func (f studentForm) complete() bool {
	return f.roll != "" && f.name != "" && f.dept != "" && f.sem != "" && f.cgpa != "" && f.grade != ""
}

func (f studentForm) student() models.Student {
	grade, _ := utf8.DecodeRuneInString(f.grade)
	return models.Student{
		Roll:       parseInt(f.roll),
		Name:       f.name,
		Department: f.dept,
		Semester:   parseInt(f.sem),
		CGPA:       parseFloat(f.cgpa),
		Grade:      grade,
	}
}

func (c *Console) readStudentForm() studentForm {
	var f studentForm
	f.roll, _ = c.prompt("Roll: ")
	f.name, _ = c.prompt("Name: ")
	f.dept, _ = c.prompt("Department: ")
	f.sem, _ = c.prompt("Semester: ")
	f.cgpa, _ = c.prompt("CGPA: ")
	f.grade, _ = c.prompt("Grade: ")
	return f
}

func (c *Console) addStudent() {
	f := c.readStudentForm()
	if !f.complete() {
		failure.Fprintln(c.out, "For adding a student, please fill ALL fields.")
		return
	}
	if !c.backend.AddStudent(f.student()) {
		failure.Fprintln(c.out, "Invalid student data.")
		return
	}
	success.Fprintln(c.out, "Student added successfully.")
	c.viewStudents()
}

func (c *Console) updateStudent() {
	f := c.readStudentForm()
	if f.roll == "" {
		failure.Fprintln(c.out, "Please enter Roll number to update student.")
		return
	}
	if !f.complete() {
		failure.Fprintln(c.out, "For updating, fill all fields with the NEW details.")
		return
	}
	if !c.backend.UpdateStudent(f.student()) {
		failure.Fprintln(c.out, "Update Failed: Student with this roll not found.")
		return
	}
	success.Fprintln(c.out, "Student details updated successfully.")
	c.viewStudents()
}

func (c *Console) deleteStudent() {
	roll, _ := c.prompt("Roll: ")
	if roll == "" {
		failure.Fprintln(c.out, "Enter the Roll number in Admin section to delete.")
		return
	}
	if !c.backend.DeleteStudent(parseInt(roll)) {
		failure.Fprintln(c.out, "Delete Failed: Student with this roll not found.")
		return
	}
	success.Fprintln(c.out, "Student deleted successfully.")
	c.viewStudents()
}

func (c *Console) viewStudents() {
	section.Fprintln(c.out, "\nStudent Records")
	fmt.Fprint(c.out, c.backend.GetAllStudents())
}

func (c *Console) lookupStudent() {
	roll, _ := c.prompt("Roll: ")
	if roll == "" {
		failure.Fprintln(c.out, "Please enter a Roll number.")
		return
	}
	fmt.Fprintln(c.out, c.backend.GetStudentByRoll(parseInt(roll)))
}

func (c *Console) searchName() {
	name, _ := c.prompt("Name: ")
	if name == "" {
		failure.Fprintln(c.out, "Please enter a name to search.")
		return
	}

	roll, added := c.backend.SearchNameOrAdd(name)
	card := c.backend.GetStudentByRoll(roll)
	section.Fprintln(c.out, "\nSearch by Name")
	if added {
		fmt.Fprintf(c.out, "Student with this name was NOT present.\nA new student has been added automatically.\n\nDetails:\n%s\n", card)
		return
	}
	fmt.Fprintf(c.out, "Student found:\n\n%s\n", card)
}

func (c *Console) submitQuery() {
	roll, _ := c.prompt("Roll: ")
	name, _ := c.prompt("Name: ")
	message, _ := c.prompt("Query: ")
	if roll == "" || name == "" || message == "" {
		failure.Fprintln(c.out, "Please fill Roll, Name and Query message.")
		return
	}

	id := c.backend.AddQuery(parseInt(roll), name, message)
	if id < 0 {
		failure.Fprintln(c.out, "Could not add query.")
		return
	}
	success.Fprintf(c.out, "Query submitted. Your Query ID: %d\n", id)
}

func (c *Console) viewQueries() {
	section.Fprintln(c.out, "\nStudent Queries")
	fmt.Fprint(c.out, c.backend.GetAllQueries())
}

func (c *Console) closeQuery() {
	id, _ := c.prompt("Query ID: ")
	answer, _ := c.prompt("New status (Resolved/Rejected): ")
	status, ok := models.ParseQueryStatus(answer)
	if id == "" || !ok {
		failure.Fprintln(c.out, "Please enter a Query ID and a status of Resolved or Rejected.")
		return
	}

	switch err := c.backend.SetQueryStatus(parseInt(id), status); {
	case errors.Is(err, backend.ErrNotFound):
		failure.Fprintln(c.out, "Query with this ID not found.")
	case errors.Is(err, backend.ErrInvalidTransition):
		failure.Fprintf(c.out, "Query cannot be marked %s.\n", status)
	case err != nil:
		failure.Fprintf(c.out, "Could not update query: %v\n", err)
	default:
		success.Fprintf(c.out, "Query %s marked %s.\n", id, status)
	}
}

func (c *Console) studentBoard() {
	section.Fprintln(c.out, "\nStudent Board")
	report.RenderStudents(c.out, c.backend.Students())
	section.Fprintln(c.out, "\nQuery Board")
	report.RenderQueries(c.out, c.backend.Queries())
}

func (c *Console) statusSummary() {
	section.Fprintln(c.out, "\nStudents by Status")
	report.RenderStatusSummary(c.out, c.backend.Students())
}

func (c *Console) importStudents(ctx context.Context) {
	filename, _ := c.prompt("Enter the CSV file path: ")
	if filename == "" {
		failure.Fprintln(c.out, "Please enter a file path.")
		return
	}
	answer, _ := c.prompt("Validate only, without adding students? (y/n): ")
	validateOnly := strings.ToLower(answer) == "y"

	file, err := os.Open(filename)
	if err != nil {
		failure.Fprintf(c.out, "Error opening file: %v\n", err)
		return
	}
	defer file.Close()

	config := importer.ImportConfig{
		SourceFile:   filename,
		ValidateOnly: validateOnly,
	}
	stats, err := importer.ImportStudents(ctx, c.backend, csv.NewReader(file), config, c.log)
	if err != nil {
		failure.Fprintf(c.out, "Error importing data: %v\n", err)
		if stats == nil {
			return
		}
	}

	stats.PrintSummary(c.out)
	if len(stats.Failed) == 0 {
		success.Fprintln(c.out, "Import completed successfully!")
		return
	}

	path, err := c.saveFailedRecords(stats)
	if err != nil {
		failure.Fprintf(c.out, "Error saving failed records: %v\n", err)
		return
	}
	section.Fprintf(c.out, "Failed records saved to: %s\n", path)
}

func (c *Console) saveFailedRecords(stats *importer.ImportStats) (string, error) {
	if err := os.MkdirAll(c.FailedImportDir, 0755); err != nil {
		return "", fmt.Errorf("error creating %s directory: %w", c.FailedImportDir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(c.FailedImportDir, fmt.Sprintf("failed_records_%s.csv", timestamp))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating failed records file: %w", err)
	}
	defer file.Close()

	if err := importer.SaveFailedRecords(file, stats); err != nil {
		return "", err
	}
	return path, nil
}

func (c *Console) exportStudents() {
	defaultPath := fmt.Sprintf("students_%s.xlsx", time.Now().Format("20060102_150405"))
	path, _ := c.prompt(fmt.Sprintf("Export file [%s]: ", defaultPath))
	if path == "" {
		path = defaultPath
	}

	file, err := os.Create(path)
	if err != nil {
		failure.Fprintf(c.out, "Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := report.ExportStudents(file, c.backend.Students()); err != nil {
		failure.Fprintf(c.out, "Error exporting students: %v\n", err)
		return
	}
	c.log.Info("students exported", zap.String("file", path))
	success.Fprintf(c.out, "Exported %d students to %s\n", len(c.backend.Students()), path)
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// parseInt reads the leading whole number of s, so "101a" is 101. Input
// with no leading digits is 0 and is left for the backend to reject.
func parseInt(s string) int {
	n, err := strconv.Atoi(intPrefix.FindString(s))
	if err != nil {
		return 0
	}
	return n
}

// parseFloat reads the leading number of s as a CGPA, so "8.5x" is 8.5
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(floatPrefix.FindString(s), 64)
	if err != nil {
		return 0
	}
	return models.NarrowCGPA(f)
}
