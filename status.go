package otf2

import (
	"errors"
	"fmt"

	"github.com/getsentry/otf2/internal/handle"
	"github.com/getsentry/otf2/internal/native"
)

var (
	// ErrNullHandle is returned when the engine failed to hand out a resource.
	ErrNullHandle = handle.ErrNullHandle

	// ErrNoEngine is returned by Open when no engine was given or linked in.
	ErrNoEngine = errors.New("otf2: no native engine available")
	// ErrClosed is returned when a closed Reader or EventReader is used.
	ErrClosed = errors.New("otf2: reader is closed")
	// ErrReaderBusy is returned while an EventReader of the Reader is open.
	ErrReaderBusy = errors.New("otf2: reader is borrowed by an open event reader")
	// ErrDefinitionsLoaded is returned when a second definition pass is attempted.
	ErrDefinitionsLoaded = errors.New("otf2: global definitions were already read")
	// ErrEventsConsumed is returned when the events of an EventReader are read twice.
	ErrEventsConsumed = errors.New("otf2: events were already consumed")
	// ErrInvalidBatchSize is returned for a batch size of zero.
	ErrInvalidBatchSize = errors.New("otf2: batch size must be positive")
)

// Status is a failure code reported by the engine. Success never becomes
// a Status.
type Status struct {
	Code native.Code

	engine native.Engine
}

func newStatus(e native.Engine, code native.Code) *Status {
	if code == native.Success {
		panic("otf2: success is not a failure status")
	}
	return &Status{Code: code, engine: e}
}

// check converts a native code into an error, nil for success.
func check(e native.Engine, code native.Code) error {
	if code == native.Success {
		return nil
	}
	return newStatus(e, code)
}

// Name returns the engine's symbolic name for the code.
func (s *Status) Name() string {
	if s.engine == nil {
		return fmt.Sprintf("code %d", s.Code)
	}
	return s.engine.ErrorName(s.Code)
}

// Description returns the engine's description of the code.
func (s *Status) Description() string {
	if s.engine == nil {
		return ""
	}
	return s.engine.ErrorDescription(s.Code)
}

func (s *Status) Error() string {
	return s.Name() + ": " + s.Description()
}

// Is matches any Status carrying the same code.
func (s *Status) Is(target error) bool {
	var t *Status
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == s.Code
}

// OpenError is returned when the anchor file could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("otf2: could not open trace %q", e.Path)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned when a decoded value holds another type
// than the one requested.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s but got %s", e.Expected, e.Actual)
}

// StopError is returned when a visitor stopped a native read loop.
// Err holds the status the loop failed with, if it reported one.
type StopError struct {
	Code CallbackCode
	Kind string
	Err  error
}

func (e *StopError) Error() string {
	msg := fmt.Sprintf("otf2: visitor returned %s on %s", e.Code, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StopError) Unwrap() error {
	return e.Err
}
