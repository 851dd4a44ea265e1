package handle

import (
	"errors"
	"strings"
	"testing"
)

type resource struct {
	name string
}

func TestNewNullPointer(t *testing.T) {
	h, err := New[resource](nil, func(*resource) error { return nil })
	if !errors.Is(err, ErrNullHandle) {
		t.Fatalf("expected ErrNullHandle, got %v", err)
	}
	if h != nil {
		t.Fatalf("expected no handle, got %v", h)
	}
	if !strings.Contains(err.Error(), "handle.resource") {
		t.Fatalf("expected the resource type in %q", err.Error())
	}
}

func TestReleaseIdempotence(t *testing.T) {
	releaseErr := errors.New("close failed")
	tests := []struct {
		name    string
		release func(*resource) error
		want    error
	}{
		{
			name:    "release succeeds",
			release: func(*resource) error { return nil },
		},
		{
			name:    "release fails",
			release: func(*resource) error { return releaseErr },
			want:    releaseErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			var released *resource
			r := &resource{name: "reader"}
			h, err := New(r, func(p *resource) error {
				calls++
				released = p
				return tt.release(p)
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !h.Live() {
				t.Fatal("expected a live handle")
			}
			if err := h.Release(); !errors.Is(err, tt.want) {
				t.Fatalf("first release: expected %v, got %v", tt.want, err)
			}
			if err := h.Release(); err != nil {
				t.Fatalf("second release: expected nil, got %v", err)
			}
			if calls != 1 {
				t.Fatalf("expected release to run once, ran %d times", calls)
			}
			if released != r {
				t.Fatal("release received the wrong pointer")
			}
			if h.Live() {
				t.Fatal("expected a released handle")
			}
		})
	}
}

func TestBorrowAfterRelease(t *testing.T) {
	h, err := New(&resource{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Borrow() == nil {
		t.Fatal("expected a pointer from a live handle")
	}
	_ = h.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Borrow on a released handle to panic")
		}
	}()
	h.Borrow()
}
