package model

import (
	"errors"
	"testing"

	"github.com/stemsi/course-registration/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson_SetNames_TitleCasesOnRead(t *testing.T) {
	cases := map[string]string{
		"john":  "John",
		"DOE":   "Doe",
		"mCkAy": "Mckay",
		"":      "",
	}
	for in, want := range cases {
		var p Person
		require.NoError(t, p.SetFirstName(in), in)
		require.NoError(t, p.SetLastName(in), in)
		assert.Equal(t, want, p.FirstName(), in)
		assert.Equal(t, want, p.LastName(), in)
	}
}

func TestPerson_SetName_RejectsNonLetters(t *testing.T) {
	bad := []string{"John3", "Ann-Marie", "o'neil", "a b", "x!", "42"}
	for _, value := range bad {
		p, err := NewPerson("ann", "li")
		require.NoError(t, err)

		err = p.SetFirstName(value)
		require.Error(t, err, value)
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.Equal(t, "Ann", p.FirstName(), "previous value must be kept")

		err = p.SetLastName(value)
		require.Error(t, err, value)
		assert.Equal(t, "Li", p.LastName(), "previous value must be kept")
	}
}

func TestNewPerson_InvalidLastName(t *testing.T) {
	_, err := NewPerson("ann", "li2")

	require.Error(t, err)
	kind, ok := apperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, kind)
	assert.Contains(t, err.Error(), "last name")
}

func TestSetFirstName_CauseIsTranslated(t *testing.T) {
	var p Person

	err := p.SetFirstName("John3")

	require.Error(t, err)
	assert.EqualError(t, errors.Unwrap(err), "first_name must contain only alphabetic characters")
	assert.NotContains(t, err.Error(), "nameFields")
}

func TestPerson_String(t *testing.T) {
	p, err := NewPerson("ann", "LI")
	require.NoError(t, err)

	assert.Equal(t, "Ann, Li", p.String())
}

func TestStudent_CourseNameIsUnrestricted(t *testing.T) {
	s, err := NewStudent("john", "doe", "intro to python 101!")
	require.NoError(t, err)

	assert.Equal(t, "Intro To Python 101!", s.CourseName())
	assert.Equal(t, "John, Doe, Intro To Python 101!", s.String())

	s.SetCourseName("")
	assert.Equal(t, "", s.CourseName())
}

func TestStudent_RecordKeepsStoredCase(t *testing.T) {
	s, err := NewStudent("ann", "li", "math")
	require.NoError(t, err)

	assert.Equal(t, Record{FirstName: "ann", LastName: "li", CourseName: "math"}, s.Record())
}

func TestStudentFromRecord(t *testing.T) {
	s, err := StudentFromRecord(Record{FirstName: "ann", LastName: "li", CourseName: "math"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", s.FirstName())
	assert.Equal(t, "Math", s.CourseName())

	_, err = StudentFromRecord(Record{FirstName: "John3", LastName: "Doe"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
