package contact

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
)

type State int32

const (
	Idle State = iota
	Editing
	Sending
	Sent
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Sending:
		return "sending..."
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Dialogs collects a form from the user and reports the outcome.
type Dialogs interface {
	Ask() (Form, error)
	Success(msg string) error
	Failure(msg string) error
}

// Sounder plays a short cue.
type Sounder interface {
	Play() error
}

// Flow runs ask -> submit -> notify, one submission at a time.
type Flow struct {
	dialogs   Dialogs
	submitter *Submitter
	sound     Sounder

	state   atomic.Int32
	running atomic.Bool
}

// NewFlow wires the flow. sound may be nil.
func NewFlow(d Dialogs, s *Submitter, sound Sounder) *Flow {
	return &Flow{dialogs: d, submitter: s, sound: sound}
}

func (f *Flow) State() State { return State(f.state.Load()) }

// Start launches a submission in the background. It reports false if one is
// already in progress.
func (f *Flow) Start(ctx context.Context) bool {
	if !f.running.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer f.running.Store(false)
		if err := f.Run(ctx); err != nil && !errors.Is(err, ErrCanceled) {
			log.Printf("contact: %v", err)
		}
	}()
	return true
}

// Run performs one submission synchronously.
func (f *Flow) Run(ctx context.Context) error {
	f.state.Store(int32(Editing))
	form, err := f.dialogs.Ask()
	if err != nil {
		f.state.Store(int32(Idle))
		return err
	}

	f.state.Store(int32(Sending))
	if err := f.submitter.Submit(ctx, form.Trimmed()); err != nil {
		f.state.Store(int32(Failed))
		if derr := f.dialogs.Failure(FailureMessage); derr != nil {
			log.Printf("contact: failure dialog: %v", derr)
		}
		return err
	}

	f.state.Store(int32(Sent))
	log.Printf("contact: message from %s <%s> sent", form.Trimmed().Name, form.Trimmed().Email)
	if f.sound != nil {
		if err := f.sound.Play(); err != nil {
			log.Printf("contact: chime: %v", err)
		}
	}
	return f.dialogs.Success(SuccessMessage)
}
