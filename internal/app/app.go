package app

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-registration/internal/console"
	"github.com/stemsi/course-registration/internal/model"
	"github.com/stemsi/course-registration/internal/repository"
)

// RosterStore persists the roster.
type RosterStore interface {
	Load(roster []*model.Student) ([]*model.Student, error)
	Save(roster []*model.Student) error
}

// App runs the menu loop. It owns the roster for the whole session.
type App struct {
	store   RosterStore
	console *console.Console
	log     zerolog.Logger
	roster  []*model.Student
}

// New creates an App with an empty roster.
func New(store RosterStore, con *console.Console, log zerolog.Logger) *App {
	return &App{store: store, console: con, log: log}
}

// Roster returns the current in-memory roster.
func (a *App) Roster() []*model.Student {
	return a.roster
}

// Run loads the persisted roster and serves the menu until the operator
// exits or input ends. Unsaved changes are discarded on exit. A non-nil
// error means input could no longer be read.
func (a *App) Run() error {
	a.load()

	for {
		a.console.OutputMenu(console.Menu)
		choice, err := a.console.InputMenuChoice()
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.log.Info().Msg("Input closed, exiting")
				a.console.OutputFarewell()
				return nil
			}
			return err
		}

		switch choice {
		case console.ChoiceRegister:
			a.roster = a.console.InputStudentData(a.roster)
		case console.ChoiceShow:
			a.console.OutputStudentCourses(a.roster)
		case console.ChoiceSave:
			a.save()
		case console.ChoiceExit:
			a.log.Info().Int("roster_size", len(a.roster)).Msg("Exiting")
			a.console.OutputFarewell()
			return nil
		}
	}
}

// load reads the roster file. A failure is reported and the session
// continues with whatever was read.
func (a *App) load() {
	roster, err := a.store.Load(a.roster)
	a.roster = roster
	if err != nil {
		a.console.OutputErrorMessages(repository.MsgReadFailed, err)
	}
}

// save writes the roster and shows it on success.
func (a *App) save() {
	if err := a.store.Save(a.roster); err != nil {
		a.console.OutputErrorMessages(repository.MsgWriteFailed, err)
		return
	}
	a.console.OutputStudentCourses(a.roster)
}
