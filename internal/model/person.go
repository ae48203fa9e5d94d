package model

import (
	"fmt"

	"github.com/stemsi/course-registration/internal/apperror"
	"github.com/stemsi/course-registration/internal/validator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameFields carries the validation rules for a person's names:
// letters only, or empty.
type nameFields struct {
	FirstName string `json:"first_name" validate:"omitempty,alphaunicode"`
	LastName  string `json:"last_name" validate:"omitempty,alphaunicode"`
}

// Person holds a validated first/last name pair. Names are stored as
// entered and read back in title case.
type Person struct {
	firstName string
	lastName  string
}

// NewPerson creates a Person, failing with a validation error if either
// name contains anything other than letters.
func NewPerson(firstName, lastName string) (Person, error) {
	var p Person
	if err := p.SetFirstName(firstName); err != nil {
		return Person{}, err
	}
	if err := p.SetLastName(lastName); err != nil {
		return Person{}, err
	}
	return p, nil
}

// FirstName returns the first name in title case.
func (p Person) FirstName() string { return titleCase(p.firstName) }

// LastName returns the last name in title case.
func (p Person) LastName() string { return titleCase(p.lastName) }

// SetFirstName replaces the first name. On failure the previous value is kept.
func (p *Person) SetFirstName(value string) error {
	if err := validator.Fields(nameFields{FirstName: value}, "FirstName"); err != nil {
		return apperror.New(apperror.KindValidation, "The first name should only contain letters!", validator.Translate(err))
	}
	p.firstName = value
	return nil
}

// SetLastName replaces the last name. On failure the previous value is kept.
func (p *Person) SetLastName(value string) error {
	if err := validator.Fields(nameFields{LastName: value}, "LastName"); err != nil {
		return apperror.New(apperror.KindValidation, "The last name should only contain letters!", validator.Translate(err))
	}
	p.lastName = value
	return nil
}

func (p Person) String() string {
	return fmt.Sprintf("%s, %s", p.FirstName(), p.LastName())
}

// titleCase upper-cases the first letter of each word and lower-cases the rest.
// A Caser keeps state, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
