package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-registration/internal/apperror"
	"github.com/stemsi/course-registration/internal/model"
)

// Menu is the fixed menu shown on every loop iteration.
const Menu = `
----- Course Registration Program -----
  Select from the following menu:
   1. Register a Student for a Course
   2. Show Current Data
   3. Save Data to a File
   4. Exit the Program
---------------------------------------
`

// Menu choices. ChoiceNone is returned for rejected input and matches no action.
const (
	ChoiceNone     = "0"
	ChoiceRegister = "1"
	ChoiceShow     = "2"
	ChoiceSave     = "3"
	ChoiceExit     = "4"
)

// Prompts.
const (
	PromptChoice     = "What would you like to do? "
	PromptFirstName  = "Enter the student's first name: "
	PromptLastName   = "Enter the student's last name: "
	PromptCourseName = "Please enter the course name: "
)

// Operator-facing messages.
const (
	MsgInvalidChoice = "\n!!! Please choose a menu option (1, 2, 3, or 4). !!!"
	MsgBadData       = "Incorrect type of data!"
	MsgEntryProblem  = "There was a problem with your entered data."
)

var delimiter = strings.Repeat("-", 60)

// Console is the presentation layer: it renders the menu and roster and
// captures operator input line by line.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	return &Console{in: bufio.NewReader(in), out: out, log: log}
}

// OutputErrorMessages prints message and, when err is not nil, a technical
// block with the underlying cause, its description and its kind.
func (c *Console) OutputErrorMessages(message string, err error) {
	fmt.Fprintln(c.out, message)
	if err == nil {
		return
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "----------- Technical Error Message -----------")
	fmt.Fprintln(c.out, technicalText(err))
	fmt.Fprintln(c.out, apperror.Describe(err))
	fmt.Fprintln(c.out, apperror.KindName(err))

	c.log.Debug().Err(err).Str("kind", apperror.KindName(err)).Msg("Reported error to operator")
}

// technicalText returns the underlying cause of an *apperror.Error, whose
// own message is already shown to the operator.
func technicalText(err error) string {
	var ae *apperror.Error
	if errors.As(err, &ae) && ae.Err != nil {
		return ae.Err.Error()
	}
	return err.Error()
}

// OutputMenu prints the menu text.
func (c *Console) OutputMenu(menu string) {
	fmt.Fprintln(c.out, menu)
}

// InputMenuChoice prompts once for a menu choice. Anything other than
// "1".."4" is reported and ChoiceNone is returned; the caller re-shows the
// menu. An error is returned only when input can no longer be read; it
// wraps io.EOF once input is exhausted.
func (c *Console) InputMenuChoice() (string, error) {
	choice, err := c.prompt(PromptChoice)
	if err != nil {
		return ChoiceNone, err
	}

	switch choice {
	case ChoiceRegister, ChoiceShow, ChoiceSave, ChoiceExit:
		return choice, nil
	default:
		c.log.Debug().Str("choice", choice).Msg("Rejected menu choice")
		c.OutputErrorMessages(MsgInvalidChoice, nil)
		return ChoiceNone, nil
	}
}

// OutputStudentCourses prints one line per student between delimiter lines.
func (c *Console) OutputStudentCourses(roster []*model.Student) {
	fmt.Fprintln(c.out, delimiter)
	for _, st := range roster {
		fmt.Fprintf(c.out, "\t%s %s is enrolled in %s\n", st.FirstName(), st.LastName(), st.CourseName())
	}
	fmt.Fprintln(c.out, delimiter)
}

// InputStudentData asks for a first name, last name and course name and
// appends the new student to roster. On failure the error is reported and
// roster is returned unchanged.
func (c *Console) InputStudentData(roster []*model.Student) []*model.Student {
	st, err := c.readStudent()
	if err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			c.OutputErrorMessages(MsgBadData, err)
		} else {
			c.OutputErrorMessages(MsgEntryProblem, err)
		}
		return roster
	}

	roster = append(roster, st)
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "You have registered %s %s for %s.\n", st.FirstName(), st.LastName(), st.CourseName())
	c.log.Info().Str("student", st.String()).Int("roster_size", len(roster)).Msg("Student registered")
	return roster
}

// OutputFarewell prints the exit banner.
func (c *Console) OutputFarewell() {
	banner := strings.Repeat("-", 35)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, "*** Exiting Program. Thank you! ***")
	fmt.Fprintln(c.out, banner)
}

// readStudent fills a student field by field, failing on the first bad value.
func (c *Console) readStudent() (*model.Student, error) {
	st := &model.Student{}

	first, err := c.prompt(PromptFirstName)
	if err != nil {
		return nil, err
	}
	if err := st.SetFirstName(first); err != nil {
		return nil, err
	}

	last, err := c.prompt(PromptLastName)
	if err != nil {
		return nil, err
	}
	if err := st.SetLastName(last); err != nil {
		return nil, err
	}

	course, err := c.prompt(PromptCourseName)
	if err != nil {
		return nil, err
	}
	st.SetCourseName(course)

	return st, nil
}

// prompt prints label and reads one line without its line terminator.
// A final line without a newline is still returned; io.EOF is reported only
// when nothing was read.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", apperror.New(apperror.KindInput, "input ended", io.EOF)
		}
		return "", apperror.New(apperror.KindInput, "could not read input", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
