package otf2

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/getsentry/otf2/internal/handle"
	"github.com/getsentry/otf2/internal/native"
)

// EventReader holds the event files of a set of locations open. Its
// events are read once, either through Events or Visit.
type EventReader struct {
	reader    *Reader
	locations []LocationRef
	batchSize uint64
	evtFiles  *handle.Handle[native.Reader]
	iter      *EventIter
	consumed  bool
}

func newEventReader(r *Reader, locations []LocationRef, batchSize uint64) (*EventReader, error) {
	e, reader := r.engine, r.handle.Borrow()
	for _, l := range locations {
		if err := check(e, e.ReaderSelectLocation(reader, l)); err != nil {
			return nil, fmt.Errorf("select location %d: %w", l, err)
		}
	}
	if err := readLocalDefinitions(e, reader, locations); err != nil {
		return nil, err
	}
	evtFiles, err := openScope(e, reader, e.ReaderOpenEvtFiles, e.ReaderCloseEvtFiles)
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		if e.ReaderGetEvtReader(reader, l) == nil {
			_ = evtFiles.Release()
			return nil, fmt.Errorf("event reader of location %d: %w", l, ErrNullHandle)
		}
	}
	return &EventReader{
		reader:    r,
		locations: slices.Clone(locations),
		batchSize: batchSize,
		evtFiles:  evtFiles,
	}, nil
}

// readLocalDefinitions reads the local definitions of every location that
// has any. The engine hands out no reader for locations without them.
func readLocalDefinitions(e native.Engine, reader *native.Reader, locations []LocationRef) (err error) {
	defFiles, err := openScope(e, reader, e.ReaderOpenDefFiles, e.ReaderCloseDefFiles)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := defFiles.Release(); err == nil {
			err = cerr
		}
	}()
	for _, l := range locations {
		dr, err := handle.New(e.ReaderGetDefReader(reader, l), func(dr *native.DefReader) error {
			return check(e, e.ReaderCloseDefReader(reader, dr))
		})
		if errors.Is(err, ErrNullHandle) {
			continue
		}
		_, code := e.ReaderReadAllLocalDefinitions(reader, dr.Borrow())
		err = check(e, code)
		if cerr := dr.Release(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("local definitions of location %d: %w", l, err)
		}
	}
	return nil
}

// Locations returns the selected locations.
func (er *EventReader) Locations() []LocationRef {
	return slices.Clone(er.locations)
}

func (er *EventReader) BatchSize() uint64 {
	return er.batchSize
}

func (er *EventReader) start() error {
	if !er.evtFiles.Live() {
		return ErrClosed
	}
	if er.consumed {
		return ErrEventsConsumed
	}
	return nil
}

// Events returns the merged events of the selected locations in the
// order the engine reports them. Each event is first dispatched to the
// visitors. An event a visitor stopped on is not yielded and ends the
// sequence with a *StopError.
func (er *EventReader) Events(visitors ...EventVisitor) (*EventIter, error) {
	if err := er.start(); err != nil {
		return nil, err
	}
	it, err := er.open(visitors, newEventBuffer(er.batchSize))
	if err != nil {
		return nil, err
	}
	er.consumed = true
	er.iter = it
	return it, nil
}

// Visit dispatches all events to the visitors without buffering them and
// returns the number of events read.
func (er *EventReader) Visit(visitors ...EventVisitor) (uint64, error) {
	if err := er.start(); err != nil {
		return 0, err
	}
	it, err := er.open(visitors, nil)
	if err != nil {
		return 0, err
	}
	er.consumed = true
	for !it.exhausted {
		it.readBatch()
	}
	err = it.err
	if cerr := it.Close(); err == nil {
		err = cerr
	}
	return it.count, err
}

func (er *EventReader) open(visitors EventVisitors, buffer *eventBuffer) (*EventIter, error) {
	e, reader := er.reader.engine, er.reader.handle.Borrow()
	it := &EventIter{
		engine:    e,
		batchSize: er.batchSize,
		dispatch:  &eventDispatch{engine: e, visitors: visitors, buffer: buffer},
	}
	if len(er.locations) == 0 {
		it.exhausted = true
		return it, nil
	}
	gr, err := handle.New(e.ReaderGetGlobalEvtReader(reader), func(gr *native.GlobalEvtReader) error {
		return check(e, e.ReaderCloseGlobalEvtReader(reader, gr))
	})
	if err != nil {
		return nil, err
	}
	it.handle = gr
	it.userData = native.NewUserData(it.dispatch)
	if err := check(e, e.ReaderRegisterGlobalEvtCallbacks(reader, gr.Borrow(), eventCallbacks(), it.userData)); err != nil {
		_ = it.Close()
		return nil, err
	}
	return it, nil
}

// Close closes the iterator, if any, and the event files. The Reader is
// usable again afterwards.
func (er *EventReader) Close() error {
	if !er.evtFiles.Live() {
		return nil
	}
	var err error
	if er.iter != nil {
		err = er.iter.Close()
	}
	if cerr := er.evtFiles.Release(); err == nil {
		err = cerr
	}
	if er.reader.events == er {
		er.reader.events = nil
	}
	return err
}

// EventIter is a forward-only sequence of events. Batches are read from
// the engine only when all buffered events were consumed.
//
//	for it.Next() {
//		ev := it.Event()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type EventIter struct {
	engine    native.Engine
	handle    *handle.Handle[native.GlobalEvtReader]
	dispatch  *eventDispatch
	userData  native.UserData
	batchSize uint64

	count     uint64
	exhausted bool
	current   Event
	err       error
}

// readBatch issues one native batch read. Reading fewer events than asked
// for means the stream ended.
func (it *EventIter) readBatch() {
	if !it.handle.Live() {
		it.exhausted = true
		return
	}
	n, code := it.engine.GlobalEvtReaderReadEvents(it.handle.Borrow(), it.batchSize)
	it.count += n
	if stopped := it.dispatch.stopped; stopped != nil {
		cerr := *stopped
		cerr.Err = check(it.engine, code)
		it.err = &cerr
		it.exhausted = true
		return
	}
	if err := check(it.engine, code); err != nil {
		it.err = err
		it.exhausted = true
		return
	}
	if n < it.batchSize {
		it.exhausted = true
	}
}

// Next advances to the next event and reports whether there is one.
func (it *EventIter) Next() bool {
	for it.dispatch.buffer.len() == 0 {
		if it.exhausted {
			it.current = Event{}
			return false
		}
		it.readBatch()
	}
	it.current, _ = it.dispatch.buffer.pop()
	return true
}

// Event returns the event Next advanced to.
func (it *EventIter) Event() Event {
	return it.current
}

// Err returns the error that ended the sequence, nil when it ended
// because all events were read.
func (it *EventIter) Err() error {
	return it.err
}

// All yields the remaining events. Check Err once the loop ends.
func (it *EventIter) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for it.Next() {
			if !yield(it.current) {
				return
			}
		}
	}
}

// Close releases the global event reader. Buffered events are dropped.
func (it *EventIter) Close() error {
	it.exhausted = true
	err := it.handle.Release()
	if it.userData != 0 {
		it.userData.Delete()
		it.userData = 0
	}
	if it.dispatch.buffer != nil {
		it.dispatch.buffer.reset()
	}
	return err
}
