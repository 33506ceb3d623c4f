package intake

import (
	"errors"
	"fmt"
)

// State is the submission state of the intake form
type State int

const (
	StateIdle State = iota
	StateCollecting
	StateValidated
	StateChatting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateValidated:
		return "validated"
	case StateChatting:
		return "chatting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrIncomplete is returned by Submit when a mandatory control is unset
var ErrIncomplete = errors.New("모든 항목(날짜 포함)을 선택해주세요!")

// ErrLocked is returned when the form is edited after submission
var ErrLocked = errors.New("form already submitted")

// Form mirrors the page's intake controls. The page script implements the
// same transitions; this type is the reference for them.
type Form struct {
	state  State
	record Record
	input  TargetInput
}

// NewForm returns an idle form with the default injury preselected
func NewForm() *Form {
	return &Form{record: Record{Injury: DefaultInjury}}
}

func (f *Form) State() State { return f.state }

// Record returns the record built so far. After Submit it is final.
func (f *Form) Record() Record { return f.record }

func (f *Form) edit() error {
	if f.state >= StateValidated {
		return ErrLocked
	}
	f.state = StateCollecting
	return nil
}

// SelectGoal sets the goal and clears the controls of the other target shape
func (f *Form) SelectGoal(g Goal) error {
	if err := f.edit(); err != nil {
		return err
	}
	f.record.Goal = g
	if g.IsTrail() {
		f.input.Time = ""
	} else {
		f.input.DistanceKM, f.input.ElevationM = "", ""
	}
	return nil
}

func (f *Form) SetTime(t string) error {
	if err := f.edit(); err != nil {
		return err
	}
	f.input.Time = t
	return nil
}

func (f *Form) SetTrail(distanceKM, elevationM string) error {
	if err := f.edit(); err != nil {
		return err
	}
	f.input.DistanceKM, f.input.ElevationM = distanceKM, elevationM
	return nil
}

func (f *Form) SetLevel(v string) error    { return f.set(&f.record.Level, v) }
func (f *Form) SetRaceDate(v string) error { return f.set(&f.record.RaceDate, v) }
func (f *Form) SetInjury(v string) error   { return f.set(&f.record.Injury, v) }
func (f *Form) SetDays(v string) error     { return f.set(&f.record.Days, v) }

func (f *Form) set(field *string, v string) error {
	if err := f.edit(); err != nil {
		return err
	}
	*field = v
	return nil
}

// Submit resolves the target and checks mandatory fields. On failure the
// form stays in Collecting; on success it moves to Validated and the record
// is frozen.
func (f *Form) Submit() (Record, error) {
	if f.state >= StateValidated {
		return Record{}, ErrLocked
	}
	f.state = StateCollecting

	if f.record.Goal != "" {
		t, err := ResolveTarget(f.record.Goal, f.input)
		if err != nil {
			return Record{}, err
		}
		f.record.Target = t.String()
	}

	if err := f.record.Validate(); err != nil {
		return Record{}, fmt.Errorf("%w (%v)", ErrIncomplete, err)
	}

	f.state = StateValidated
	return f.record, nil
}

// StartChat moves a validated form into the chat view and returns the
// opening question to send.
func (f *Form) StartChat() (string, error) {
	if f.state != StateValidated {
		return "", fmt.Errorf("cannot start chat from %s", f.state)
	}
	f.state = StateChatting
	return OpeningQuestion, nil
}
