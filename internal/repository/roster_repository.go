package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-registration/internal/apperror"
	"github.com/stemsi/course-registration/internal/model"
)

// Operator-facing messages for persistence failures.
const (
	MsgReadFailed  = "Error: There was a problem with reading the file."
	MsgWriteFailed = "Error: There was a problem with writing to the file.\n" +
		"Please check that the file is not open by another program."
)

// fileRecord mirrors model.Record with pointers so that missing keys can be
// told apart from empty values.
type fileRecord struct {
	FirstName  *string `json:"FirstName"`
	LastName   *string `json:"LastName"`
	CourseName *string `json:"CourseName"`
}

// RosterRepository reads and writes the roster JSON file.
type RosterRepository struct {
	path string
	log  zerolog.Logger
}

// NewRosterRepository creates a new RosterRepository for the file at path.
func NewRosterRepository(path string, log zerolog.Logger) *RosterRepository {
	return &RosterRepository{path: path, log: log}
}

// Path returns the roster file path.
func (r *RosterRepository) Path() string {
	return r.path
}

// Load appends every student in the file to roster, in file order.
// On failure the roster is returned as far as it got, together with an
// *apperror.Error of kind IO, Parse or Validation.
func (r *RosterRepository) Load(roster []*model.Student) ([]*model.Student, error) {
	f, err := os.Open(r.path)
	if err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("Failed to open roster file")
		return roster, apperror.New(apperror.KindIO, MsgReadFailed, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("Failed to read roster file")
		return roster, apperror.New(apperror.KindIO, MsgReadFailed, err)
	}

	// Elements are decoded one at a time so that a bad record keeps the
	// students appended before it.
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("Failed to decode roster file")
		return roster, apperror.New(apperror.KindParse, MsgReadFailed, err)
	}
	if elements == nil {
		return roster, apperror.New(apperror.KindParse, MsgReadFailed, errors.New("roster file holds null instead of a list"))
	}

	for i, raw := range elements {
		var fr fileRecord
		if err := json.Unmarshal(raw, &fr); err != nil {
			r.log.Warn().Err(err).Int("record", i).Msg("Malformed roster record")
			return roster, apperror.New(apperror.KindParse, MsgReadFailed, fmt.Errorf("record %d: %w", i, err))
		}
		rec, err := fr.record(i)
		if err != nil {
			r.log.Warn().Err(err).Int("record", i).Msg("Incomplete roster record")
			return roster, apperror.New(apperror.KindParse, MsgReadFailed, err)
		}
		st, err := model.StudentFromRecord(rec)
		if err != nil {
			r.log.Warn().Err(err).Int("record", i).Msg("Invalid roster record")
			return roster, apperror.New(apperror.KindValidation, MsgReadFailed, err)
		}
		roster = append(roster, st)
	}

	r.log.Info().Str("path", r.path).Int("count", len(elements)).Msg("Roster loaded")
	return roster, nil
}

// Save overwrites the file with roster, in roster order. The encoding is
// deterministic, so saving an unchanged roster yields identical bytes.
func (r *RosterRepository) Save(roster []*model.Student) error {
	records := make([]model.Record, 0, len(roster))
	for _, st := range roster {
		records = append(records, st.Record())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperror.New(apperror.KindParse, MsgWriteFailed, err)
	}
	data = append(data, '\n')

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("Failed to open roster file for writing")
		return apperror.New(apperror.KindIO, MsgWriteFailed, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("Failed to write roster file")
		return apperror.New(apperror.KindIO, MsgWriteFailed, err)
	}
	if err := f.Sync(); err != nil {
		return apperror.New(apperror.KindIO, MsgWriteFailed, err)
	}

	r.log.Info().Str("path", r.path).Int("count", len(records)).Msg("Roster saved")
	return nil
}

func (fr fileRecord) record(index int) (model.Record, error) {
	switch {
	case fr.FirstName == nil:
		return model.Record{}, fmt.Errorf("record %d: missing key %q", index, "FirstName")
	case fr.LastName == nil:
		return model.Record{}, fmt.Errorf("record %d: missing key %q", index, "LastName")
	case fr.CourseName == nil:
		return model.Record{}, fmt.Errorf("record %d: missing key %q", index, "CourseName")
	}
	return model.Record{
		FirstName:  *fr.FirstName,
		LastName:   *fr.LastName,
		CourseName: *fr.CourseName,
	}, nil
}
