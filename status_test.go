package otf2

import (
	"errors"
	"testing"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/native/memtrace"
)

func TestCheck(t *testing.T) {
	e := memtrace.New()
	if err := check(e, native.Success); err != nil {
		t.Fatalf("check(success) = %v, want nil", err)
	}

	err := check(e, memtrace.ErrIndexOutOfBounds)
	var status *Status
	if !errors.As(err, &status) {
		t.Fatalf("got %v, want a *Status", err)
	}
	if status.Code != memtrace.ErrIndexOutOfBounds {
		t.Fatalf("got code %d, want %d", status.Code, memtrace.ErrIndexOutOfBounds)
	}
	if got, want := status.Name(), "OTF2_ERROR_INDEX_OUT_OF_BOUNDS"; got != want {
		t.Fatalf("Name() = %q, want %q", got, want)
	}
	if got, want := err.Error(), "OTF2_ERROR_INDEX_OUT_OF_BOUNDS: Index out of bounds"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, &Status{Code: memtrace.ErrIndexOutOfBounds}) {
		t.Fatal("status does not match a status with the same code")
	}
	if errors.Is(err, &Status{Code: memtrace.ErrInvalid}) {
		t.Fatal("status matches a status with another code")
	}
}

func TestStatusFromSuccessPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	_ = newStatus(memtrace.New(), native.Success)
}

func TestStopErrorUnwrap(t *testing.T) {
	status := &Status{Code: memtrace.ErrInterruptedByCallback}
	err := error(&StopError{Code: CallbackInterrupt, Kind: "Enter", Err: status})
	if !errors.Is(err, status) {
		t.Fatal("callback error does not unwrap to its status")
	}
}
