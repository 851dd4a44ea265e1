package otf2

import (
	"github.com/getsentry/otf2/internal/handle"
	"github.com/getsentry/otf2/internal/native"
)

type (
	Option func(*options)

	options struct {
		engine            native.Engine
		serialCollectives bool
	}
)

// WithEngine reads the trace with e instead of the default engine.
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithoutSerialCollectives leaves the reader without collective callbacks.
// Only readers driven by a parallel runtime need this.
func WithoutSerialCollectives() Option {
	return func(o *options) {
		o.serialCollectives = false
	}
}

// Reader is an open trace. Global definitions are read once per Reader,
// events are read through at most one EventReader at a time.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	engine native.Engine
	handle *handle.Handle[native.Reader]
	path   string

	loaded bool
	defs   *Definitions
	events *EventReader
}

// Open opens the trace whose anchor file is at path.
func Open(path string, opts ...Option) (*Reader, error) {
	o := options{
		engine:            native.Default(),
		serialCollectives: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.engine == nil {
		return nil, ErrNoEngine
	}
	e := o.engine
	h, err := handle.New(e.ReaderOpen(path), func(r *native.Reader) error {
		return check(e, e.ReaderClose(r))
	})
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if o.serialCollectives {
		if err := check(e, e.ReaderSetSerialCollectiveCallbacks(h.Borrow())); err != nil {
			_ = h.Release()
			return nil, err
		}
	}
	return &Reader{engine: e, handle: h, path: path}, nil
}

// Path returns the anchor file path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

func (r *Reader) usable() error {
	if !r.handle.Live() {
		return ErrClosed
	}
	if r.events != nil {
		return ErrReaderBusy
	}
	return nil
}

// NumberOfLocations returns the number of locations the trace holds.
func (r *Reader) NumberOfLocations() (uint64, error) {
	if err := r.usable(); err != nil {
		return 0, err
	}
	n, code := r.engine.ReaderGetNumberOfLocations(r.handle.Borrow())
	if err := check(r.engine, code); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadDefinitions reads all global definitions and returns them in the
// order the engine reported them.
func (r *Reader) ReadDefinitions() (uint64, []Definition, error) {
	var defs []Definition
	n, err := r.VisitDefinitions(DefinitionFunc(func(d Definition) CallbackCode {
		defs = append(defs, d)
		return CallbackSuccess
	}))
	if err != nil {
		return n, nil, err
	}
	return n, defs, nil
}

// VisitDefinitions reads all global definitions, dispatching each one to
// the visitors in order. It returns the number of definitions read.
//
// A pass that failed can be retried. After a successful pass the reader
// refuses further passes with ErrDefinitionsLoaded.
func (r *Reader) VisitDefinitions(visitors ...DefinitionVisitor) (uint64, error) {
	if err := r.usable(); err != nil {
		return 0, err
	}
	if r.loaded {
		return 0, ErrDefinitionsLoaded
	}
	defs := NewDefinitions()
	all := make(DefinitionVisitors, 0, len(visitors)+1)
	all = append(all, defs)
	all = append(all, visitors...)
	n, err := r.readDefinitions(all)
	if err != nil {
		return n, err
	}
	r.defs = defs
	r.loaded = true
	return n, nil
}

func (r *Reader) readDefinitions(visitors DefinitionVisitors) (_ uint64, err error) {
	e, reader := r.engine, r.handle.Borrow()
	dispatch := &definitionDispatch{visitors: visitors}
	ud := native.NewUserData(dispatch)
	defer ud.Delete()

	dr, err := handle.New(e.ReaderGetGlobalDefReader(reader), func(dr *native.GlobalDefReader) error {
		return check(e, e.ReaderCloseGlobalDefReader(reader, dr))
	})
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := dr.Release(); err == nil {
			err = cerr
		}
	}()

	if err := check(e, e.ReaderRegisterGlobalDefCallbacks(reader, dr.Borrow(), definitionCallbacks(), ud)); err != nil {
		return 0, err
	}
	n, code := e.ReaderReadAllGlobalDefinitions(reader, dr.Borrow())
	if dispatch.stopped != nil {
		stopped := *dispatch.stopped
		stopped.Err = check(e, code)
		return n, &stopped
	}
	return n, check(e, code)
}

// Definitions returns the registries filled by the definition pass, nil
// before a pass succeeded.
func (r *Reader) Definitions() *Definitions {
	return r.defs
}

// EventReader opens the events of every location of the trace. The
// global definitions are read first when no pass happened yet.
func (r *Reader) EventReader(batchSize uint64) (*EventReader, error) {
	if err := r.usable(); err != nil {
		return nil, err
	}
	if !r.loaded {
		if _, err := r.VisitDefinitions(); err != nil {
			return nil, err
		}
	}
	return r.LocalEventReader(r.defs.Locations.Keys(), batchSize)
}

// LocalEventReader opens the events of the given locations. The reader is
// busy until the returned EventReader is closed.
func (r *Reader) LocalEventReader(locations []LocationRef, batchSize uint64) (*EventReader, error) {
	if err := r.usable(); err != nil {
		return nil, err
	}
	if batchSize == 0 {
		return nil, ErrInvalidBatchSize
	}
	er, err := newEventReader(r, locations, batchSize)
	if err != nil {
		return nil, err
	}
	r.events = er
	return er, nil
}

// Close closes an open EventReader and then the trace. Closing twice does
// nothing.
func (r *Reader) Close() error {
	if !r.handle.Live() {
		return nil
	}
	var err error
	if r.events != nil {
		err = r.events.Close()
	}
	if cerr := r.handle.Release(); err == nil {
		err = cerr
	}
	return err
}

// openScope opens a file scope of reader and returns a handle closing it.
func openScope(e native.Engine, reader *native.Reader, open, closeScope func(*native.Reader) native.Code) (*handle.Handle[native.Reader], error) {
	if err := check(e, open(reader)); err != nil {
		return nil, err
	}
	return handle.New(reader, func(r *native.Reader) error {
		return check(e, closeScope(r))
	})
}
