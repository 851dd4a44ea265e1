package memtrace

import (
	"fmt"
	"sync"

	"github.com/getsentry/otf2/internal/native"
)

// Codes reported by the engine.
const (
	ErrInvalid native.Code = iota + 1
	ErrInvalidCall
	ErrInvalidArgument
	ErrIndexOutOfBounds
	ErrInterruptedByCallback
	ErrCallback
	ErrFileInteraction
)

var codes = map[native.Code][2]string{
	native.Success:           {"OTF2_SUCCESS", "Operation was successful"},
	ErrInvalid:               {"OTF2_ERROR_INVALID", "Invalid error code"},
	ErrInvalidCall:           {"OTF2_ERROR_INVALID_CALL", "Function call not allowed in current state"},
	ErrInvalidArgument:       {"OTF2_ERROR_INVALID_ARGUMENT", "Parameter value out of range"},
	ErrIndexOutOfBounds:      {"OTF2_ERROR_INDEX_OUT_OF_BOUNDS", "Index out of bounds"},
	ErrInterruptedByCallback: {"OTF2_ERROR_INTERRUPTED_BY_CALLBACK", "Callback stopped the read operation"},
	ErrCallback:              {"OTF2_ERROR_CALLBACK", "Callback reported an error"},
	ErrFileInteraction:       {"OTF2_ERROR_FILE_INTERACTION", "Unknown error interacting with a file"},
}

type (
	// Engine serves traces registered with Add. It is safe for concurrent
	// use by readers of different traces.
	Engine struct {
		mu         sync.Mutex
		traces     map[string]*Trace
		faults     map[string]native.Code
		readers    map[*native.Reader]*reader
		defReaders map[*native.GlobalDefReader]*reader
		evtReaders map[*native.GlobalEvtReader]*reader
		attributes map[*native.AttributeList][]Attribute
		calls      []string
		reads      []uint64
		violations []string
	}

	reader struct {
		trace *Trace

		serialCollectives bool

		globalDef    *native.GlobalDefReader
		defCallbacks *native.GlobalDefCallbacks
		defUserData  native.UserData

		selected        map[native.LocationRef]bool
		defFilesOpen    bool
		localReaders    map[*native.DefReader]native.LocationRef
		evtFilesOpen    bool
		localEvtReaders map[native.LocationRef]*native.EvtReader

		globalEvt    *native.GlobalEvtReader
		evtCallbacks *native.GlobalEvtCallbacks
		evtUserData  native.UserData
		pending      []Event
		position     int
	}
)

func New() *Engine {
	return &Engine{
		traces:     make(map[string]*Trace),
		faults:     make(map[string]native.Code),
		readers:    make(map[*native.Reader]*reader),
		defReaders: make(map[*native.GlobalDefReader]*reader),
		evtReaders: make(map[*native.GlobalEvtReader]*reader),
		attributes: make(map[*native.AttributeList][]Attribute),
	}
}

// Add serves t for the anchor path.
func (e *Engine) Add(path string, t *Trace) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.traces[path] = t
}

// Fail makes every later call of the named Engine method fail with code.
// Constructors return nil instead.
func (e *Engine) Fail(method string, code native.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.faults[method] = code
}

// Calls returns the names of the Engine methods called so far, in order.
func (e *Engine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.calls...)
}

// EventReads returns the number of events delivered by each
// GlobalEvtReaderReadEvents call.
func (e *Engine) EventReads() []uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]uint64(nil), e.reads...)
}

// Violations describes resources that were still open when their parent
// reader was closed.
func (e *Engine) Violations() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.violations...)
}

// OpenReaders returns the number of readers not closed yet.
func (e *Engine) OpenReaders() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.readers)
}

// call records the method and returns its injected fault, if any. The
// caller must hold e.mu.
func (e *Engine) call(method string) native.Code {
	e.calls = append(e.calls, method)
	return e.faults[method]
}

func (e *Engine) ErrorName(code native.Code) string {
	if c, ok := codes[code]; ok {
		return c[0]
	}
	return fmt.Sprintf("OTF2_ERROR_%d", code)
}

func (e *Engine) ErrorDescription(code native.Code) string {
	if c, ok := codes[code]; ok {
		return c[1]
	}
	return "Unknown error code"
}

func (e *Engine) ReaderOpen(path string) *native.Reader {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.call("ReaderOpen") != native.Success {
		return nil
	}
	t, ok := e.traces[path]
	if !ok {
		return nil
	}
	r := &native.Reader{}
	e.readers[r] = &reader{
		trace:           t,
		selected:        make(map[native.LocationRef]bool),
		localReaders:    make(map[*native.DefReader]native.LocationRef),
		localEvtReaders: make(map[native.LocationRef]*native.EvtReader),
	}
	return r
}

func (e *Engine) ReaderClose(r *native.Reader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderClose"); code != native.Success {
		return code
	}
	rd, ok := e.readers[r]
	if !ok {
		return ErrInvalidArgument
	}
	if rd.globalDef != nil {
		e.violations = append(e.violations, "global definition reader open at close")
		delete(e.defReaders, rd.globalDef)
	}
	if rd.globalEvt != nil {
		e.violations = append(e.violations, "global event reader open at close")
		delete(e.evtReaders, rd.globalEvt)
	}
	if rd.defFilesOpen {
		e.violations = append(e.violations, "definition files open at close")
	}
	if len(rd.localReaders) > 0 {
		e.violations = append(e.violations, "local definition reader open at close")
	}
	if rd.evtFilesOpen {
		e.violations = append(e.violations, "event files open at close")
	}
	delete(e.readers, r)
	return native.Success
}

func (e *Engine) reader(r *native.Reader) (*reader, native.Code) {
	rd, ok := e.readers[r]
	if !ok {
		return nil, ErrInvalidArgument
	}
	return rd, native.Success
}

func (e *Engine) ReaderSetSerialCollectiveCallbacks(r *native.Reader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderSetSerialCollectiveCallbacks"); code != native.Success {
		return code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return code
	}
	rd.serialCollectives = true
	return native.Success
}

func (e *Engine) ReaderGetNumberOfLocations(r *native.Reader) (uint64, native.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderGetNumberOfLocations"); code != native.Success {
		return 0, code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return 0, code
	}
	return uint64(len(rd.trace.Locations())), native.Success
}

func (e *Engine) ReaderGetGlobalDefReader(r *native.Reader) *native.GlobalDefReader {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.call("ReaderGetGlobalDefReader") != native.Success {
		return nil
	}
	rd, ok := e.readers[r]
	if !ok || rd.globalDef != nil {
		return nil
	}
	rd.globalDef = &native.GlobalDefReader{}
	e.defReaders[rd.globalDef] = rd
	return rd.globalDef
}

func (e *Engine) ReaderCloseGlobalDefReader(r *native.Reader, dr *native.GlobalDefReader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderCloseGlobalDefReader"); code != native.Success {
		return code
	}
	rd, ok := e.defReaders[dr]
	if !ok || e.readers[r] != rd {
		return ErrInvalidArgument
	}
	delete(e.defReaders, dr)
	rd.globalDef = nil
	rd.defCallbacks = nil
	return native.Success
}

func (e *Engine) ReaderRegisterGlobalDefCallbacks(r *native.Reader, dr *native.GlobalDefReader, cbs *native.GlobalDefCallbacks, ud native.UserData) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderRegisterGlobalDefCallbacks"); code != native.Success {
		return code
	}
	rd, ok := e.defReaders[dr]
	if !ok || e.readers[r] != rd || cbs == nil {
		return ErrInvalidArgument
	}
	rd.defCallbacks = cbs
	rd.defUserData = ud
	return native.Success
}

func (e *Engine) ReaderReadAllGlobalDefinitions(r *native.Reader, dr *native.GlobalDefReader) (uint64, native.Code) {
	e.mu.Lock()
	if code := e.call("ReaderReadAllGlobalDefinitions"); code != native.Success {
		e.mu.Unlock()
		return 0, code
	}
	rd, ok := e.defReaders[dr]
	if !ok || e.readers[r] != rd {
		e.mu.Unlock()
		return 0, ErrInvalidArgument
	}
	if rd.defCallbacks == nil {
		e.mu.Unlock()
		return 0, ErrInvalidCall
	}
	cbs, ud, defs := rd.defCallbacks, rd.defUserData, rd.trace.Definitions
	e.mu.Unlock()

	var read uint64
	for _, d := range defs {
		read++
		if code := cbs.Deliver(ud, d); code != native.CallbackSuccess {
			return read, callbackFailure(code)
		}
	}
	return read, native.Success
}

func callbackFailure(code native.CallbackCode) native.Code {
	if code == native.CallbackInterrupt {
		return ErrInterruptedByCallback
	}
	return ErrCallback
}

func (e *Engine) ReaderSelectLocation(r *native.Reader, location native.LocationRef) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderSelectLocation"); code != native.Success {
		return code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return code
	}
	if rd.evtFilesOpen {
		return ErrInvalidCall
	}
	rd.selected[location] = true
	return native.Success
}

func (e *Engine) ReaderOpenDefFiles(r *native.Reader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderOpenDefFiles"); code != native.Success {
		return code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return code
	}
	if rd.defFilesOpen {
		return ErrInvalidCall
	}
	rd.defFilesOpen = true
	return native.Success
}

func (e *Engine) ReaderCloseDefFiles(r *native.Reader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderCloseDefFiles"); code != native.Success {
		return code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return code
	}
	if !rd.defFilesOpen {
		return ErrInvalidCall
	}
	if len(rd.localReaders) > 0 {
		e.violations = append(e.violations, "local definition reader open at definition files close")
	}
	rd.defFilesOpen = false
	return native.Success
}

func (e *Engine) ReaderGetDefReader(r *native.Reader, location native.LocationRef) *native.DefReader {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.call("ReaderGetDefReader") != native.Success {
		return nil
	}
	rd, ok := e.readers[r]
	if !ok || !rd.defFilesOpen || !rd.selected[location] {
		return nil
	}
	if _, ok := rd.trace.LocalDefinitions[location]; !ok {
		return nil
	}
	dr := &native.DefReader{}
	rd.localReaders[dr] = location
	return dr
}

func (e *Engine) ReaderReadAllLocalDefinitions(r *native.Reader, dr *native.DefReader) (uint64, native.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderReadAllLocalDefinitions"); code != native.Success {
		return 0, code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return 0, code
	}
	location, ok := rd.localReaders[dr]
	if !ok {
		return 0, ErrInvalidArgument
	}
	return rd.trace.LocalDefinitions[location], native.Success
}

func (e *Engine) ReaderCloseDefReader(r *native.Reader, dr *native.DefReader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderCloseDefReader"); code != native.Success {
		return code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return code
	}
	if _, ok := rd.localReaders[dr]; !ok {
		return ErrInvalidArgument
	}
	delete(rd.localReaders, dr)
	return native.Success
}

func (e *Engine) ReaderOpenEvtFiles(r *native.Reader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderOpenEvtFiles"); code != native.Success {
		return code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return code
	}
	if rd.evtFilesOpen {
		return ErrInvalidCall
	}
	rd.evtFilesOpen = true
	return native.Success
}

func (e *Engine) ReaderCloseEvtFiles(r *native.Reader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderCloseEvtFiles"); code != native.Success {
		return code
	}
	rd, code := e.reader(r)
	if code != native.Success {
		return code
	}
	if !rd.evtFilesOpen {
		return ErrInvalidCall
	}
	if rd.globalEvt != nil {
		e.violations = append(e.violations, "global event reader open at event files close")
	}
	rd.evtFilesOpen = false
	rd.localEvtReaders = make(map[native.LocationRef]*native.EvtReader)
	return native.Success
}

func (e *Engine) ReaderGetEvtReader(r *native.Reader, location native.LocationRef) *native.EvtReader {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.call("ReaderGetEvtReader") != native.Success {
		return nil
	}
	rd, ok := e.readers[r]
	if !ok || !rd.evtFilesOpen || !rd.selected[location] {
		return nil
	}
	if er, ok := rd.localEvtReaders[location]; ok {
		return er
	}
	er := &native.EvtReader{}
	rd.localEvtReaders[location] = er
	return er
}

func (e *Engine) ReaderGetGlobalEvtReader(r *native.Reader) *native.GlobalEvtReader {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.call("ReaderGetGlobalEvtReader") != native.Success {
		return nil
	}
	rd, ok := e.readers[r]
	if !ok || !rd.evtFilesOpen || len(rd.localEvtReaders) == 0 || rd.globalEvt != nil {
		return nil
	}
	prepared := make(map[native.LocationRef]bool, len(rd.localEvtReaders))
	for location := range rd.localEvtReaders {
		prepared[location] = true
	}
	rd.globalEvt = &native.GlobalEvtReader{}
	rd.pending = rd.trace.merged(prepared)
	rd.position = 0
	e.evtReaders[rd.globalEvt] = rd
	return rd.globalEvt
}

func (e *Engine) ReaderCloseGlobalEvtReader(r *native.Reader, er *native.GlobalEvtReader) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderCloseGlobalEvtReader"); code != native.Success {
		return code
	}
	rd, ok := e.evtReaders[er]
	if !ok || e.readers[r] != rd {
		return ErrInvalidArgument
	}
	delete(e.evtReaders, er)
	rd.globalEvt = nil
	rd.evtCallbacks = nil
	rd.pending = nil
	return native.Success
}

func (e *Engine) ReaderRegisterGlobalEvtCallbacks(r *native.Reader, er *native.GlobalEvtReader, cbs *native.GlobalEvtCallbacks, ud native.UserData) native.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.call("ReaderRegisterGlobalEvtCallbacks"); code != native.Success {
		return code
	}
	rd, ok := e.evtReaders[er]
	if !ok || e.readers[r] != rd || cbs == nil {
		return ErrInvalidArgument
	}
	rd.evtCallbacks = cbs
	rd.evtUserData = ud
	return native.Success
}

func (e *Engine) GlobalEvtReaderReadEvents(er *native.GlobalEvtReader, recordsToRead uint64) (uint64, native.Code) {
	e.mu.Lock()
	if code := e.call("GlobalEvtReaderReadEvents"); code != native.Success {
		e.mu.Unlock()
		return 0, code
	}
	rd, ok := e.evtReaders[er]
	if !ok {
		e.mu.Unlock()
		return 0, ErrInvalidArgument
	}
	end := len(rd.pending)
	if remaining := uint64(end - rd.position); recordsToRead < remaining {
		end = rd.position + int(recordsToRead)
	}
	batch := rd.pending[rd.position:end]
	cbs, ud := rd.evtCallbacks, rd.evtUserData
	e.mu.Unlock()

	var read uint64
	code := native.Success
	for _, ev := range batch {
		read++
		if cbs == nil {
			continue
		}
		if cb := e.deliver(cbs, ud, ev); cb != native.CallbackSuccess {
			code = callbackFailure(cb)
			break
		}
	}

	e.mu.Lock()
	rd.position += int(read)
	e.reads = append(e.reads, read)
	e.mu.Unlock()
	return read, code
}

func (e *Engine) deliver(cbs *native.GlobalEvtCallbacks, ud native.UserData, ev Event) native.CallbackCode {
	list := &native.AttributeList{}
	e.mu.Lock()
	e.attributes[list] = ev.Attributes
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		delete(e.attributes, list)
		e.mu.Unlock()
	}()
	h := native.EventHeader{
		Location:   ev.Location,
		Time:       ev.Time,
		Attributes: list,
	}
	return cbs.Deliver(ud, &h, ev.Record)
}

func (e *Engine) AttributeListGetNumberOfElements(l *native.AttributeList) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return uint32(len(e.attributes[l]))
}

func (e *Engine) AttributeListGetAttributeByIndex(l *native.AttributeList, index uint32) (native.AttributeRef, native.Type, native.RawValue, native.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code := e.faults["AttributeListGetAttributeByIndex"]; code != native.Success {
		return 0, native.TypeNone, native.RawValue{}, code
	}
	attrs, ok := e.attributes[l]
	if !ok {
		return 0, native.TypeNone, native.RawValue{}, ErrInvalidArgument
	}
	if int(index) >= len(attrs) {
		return 0, native.TypeNone, native.RawValue{}, ErrIndexOutOfBounds
	}
	a := attrs[index]
	return a.Ref, a.Type, a.Value, native.Success
}
