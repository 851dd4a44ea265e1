package otf2

import "github.com/getsentry/otf2/internal/native"

// definitionDispatch is the user data of a global definition read. It
// remembers the first visitor that stopped the read.
type definitionDispatch struct {
	visitors DefinitionVisitors
	stopped  *StopError
}

func definitionTarget(ud native.UserData) *definitionDispatch {
	return ud.Value().(*definitionDispatch)
}

func (d *definitionDispatch) dispatch(def Definition) CallbackCode {
	code := d.visitors.visit(def)
	if code != CallbackSuccess && d.stopped == nil {
		d.stopped = &StopError{Code: code, Kind: def.Kind().String()}
	}
	return code
}

// eventDispatch is the user data of a global event reader. Each event is
// decoded once, handed to the visitors and, when all of them continued,
// appended to buffer. A nil buffer only visits.
type eventDispatch struct {
	engine   native.Engine
	visitors EventVisitors
	buffer   *eventBuffer
	stopped  *StopError
}

func eventTarget(ud native.UserData) *eventDispatch {
	return ud.Value().(*eventDispatch)
}

func (d *eventDispatch) dispatch(h *native.EventHeader, r EventRecord) CallbackCode {
	hdr := Header{
		Location:   h.Location,
		Time:       h.Time,
		Attributes: decodeAttributes(d.engine, h.Attributes),
	}
	if code := d.visitors.visit(hdr, r); code != CallbackSuccess {
		if d.stopped == nil {
			d.stopped = &StopError{Code: code, Kind: r.Kind().String()}
		}
		return code
	}
	if d.buffer != nil {
		d.buffer.push(Event{Header: hdr, Record: r})
	}
	return CallbackSuccess
}

// maxBufferCapacity bounds the memory preallocated for huge batch sizes.
const maxBufferCapacity = 4096

// eventBuffer is a FIFO of decoded events filled by one batch read and
// drained by the iterator.
type eventBuffer struct {
	events []Event
	head   int
}

func newEventBuffer(batchSize uint64) *eventBuffer {
	return &eventBuffer{events: make([]Event, 0, min(batchSize, maxBufferCapacity))}
}

func (b *eventBuffer) push(ev Event) {
	b.events = append(b.events, ev)
}

func (b *eventBuffer) pop() (Event, bool) {
	if b.head == len(b.events) {
		return Event{}, false
	}
	ev := b.events[b.head]
	b.events[b.head] = Event{}
	b.head++
	if b.head == len(b.events) {
		b.reset()
	}
	return ev, true
}

func (b *eventBuffer) len() int {
	return len(b.events) - b.head
}

func (b *eventBuffer) reset() {
	b.events = b.events[:0]
	b.head = 0
}
