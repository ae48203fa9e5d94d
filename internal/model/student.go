package model

import "fmt"

// Student is a Person enrolled in a course. The course name is free text.
type Student struct {
	Person
	courseName string
}

// Record is the persisted shape of one enrollment in the roster file.
type Record struct {
	FirstName  string `json:"FirstName"`
	LastName   string `json:"LastName"`
	CourseName string `json:"CourseName"`
}

// NewStudent creates a Student after validating both names.
func NewStudent(firstName, lastName, courseName string) (*Student, error) {
	p, err := NewPerson(firstName, lastName)
	if err != nil {
		return nil, err
	}
	return &Student{Person: p, courseName: courseName}, nil
}

// StudentFromRecord builds a Student from a persisted record.
func StudentFromRecord(r Record) (*Student, error) {
	return NewStudent(r.FirstName, r.LastName, r.CourseName)
}

// CourseName returns the course name in title case.
func (s *Student) CourseName() string { return titleCase(s.courseName) }

// SetCourseName replaces the course name. Any string is accepted.
func (s *Student) SetCourseName(value string) {
	s.courseName = value
}

// Record returns the persisted form, keeping values exactly as entered.
func (s *Student) Record() Record {
	return Record{
		FirstName:  s.firstName,
		LastName:   s.lastName,
		CourseName: s.courseName,
	}
}

func (s *Student) String() string {
	return fmt.Sprintf("%s, %s", s.Person.String(), s.CourseName())
}
