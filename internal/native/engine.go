// Package native describes the boundary to the trace reading engine: the
// opaque resources it hands out, the codes it reports, and the callback
// tables it drives. Implementations live in subpackages.
package native

import "sync"

// Opaque engine resources. Values are only ever handled through pointers
// returned by an Engine.
type (
	Reader          struct{ _ byte }
	GlobalDefReader struct{ _ byte }
	GlobalEvtReader struct{ _ byte }
	DefReader       struct{ _ byte }
	EvtReader       struct{ _ byte }
	AttributeList   struct{ _ byte }
)

// Engine is the set of calls the adapter makes into the native library.
// Constructors return nil on failure. Every call is synchronous and may
// block on file I/O.
type Engine interface {
	ErrorName(code Code) string
	ErrorDescription(code Code) string

	ReaderOpen(anchorFilePath string) *Reader
	ReaderClose(r *Reader) Code
	ReaderSetSerialCollectiveCallbacks(r *Reader) Code
	ReaderGetNumberOfLocations(r *Reader) (uint64, Code)

	ReaderGetGlobalDefReader(r *Reader) *GlobalDefReader
	ReaderCloseGlobalDefReader(r *Reader, dr *GlobalDefReader) Code
	ReaderRegisterGlobalDefCallbacks(r *Reader, dr *GlobalDefReader, cbs *GlobalDefCallbacks, ud UserData) Code
	ReaderReadAllGlobalDefinitions(r *Reader, dr *GlobalDefReader) (uint64, Code)

	ReaderSelectLocation(r *Reader, location LocationRef) Code
	ReaderOpenDefFiles(r *Reader) Code
	ReaderCloseDefFiles(r *Reader) Code
	ReaderGetDefReader(r *Reader, location LocationRef) *DefReader
	ReaderReadAllLocalDefinitions(r *Reader, dr *DefReader) (uint64, Code)
	ReaderCloseDefReader(r *Reader, dr *DefReader) Code

	ReaderOpenEvtFiles(r *Reader) Code
	ReaderCloseEvtFiles(r *Reader) Code
	ReaderGetEvtReader(r *Reader, location LocationRef) *EvtReader

	ReaderGetGlobalEvtReader(r *Reader) *GlobalEvtReader
	ReaderCloseGlobalEvtReader(r *Reader, er *GlobalEvtReader) Code
	ReaderRegisterGlobalEvtCallbacks(r *Reader, er *GlobalEvtReader, cbs *GlobalEvtCallbacks, ud UserData) Code
	GlobalEvtReaderReadEvents(er *GlobalEvtReader, recordsToRead uint64) (uint64, Code)

	AttributeListGetNumberOfElements(l *AttributeList) uint32
	AttributeListGetAttributeByIndex(l *AttributeList, index uint32) (AttributeRef, Type, RawValue, Code)
}

var (
	defaultMu     sync.RWMutex
	defaultEngine Engine
)

// Register makes e the engine returned by Default. Backends call it from
// init, the last registration wins.
func Register(e Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = e
}

// Default returns the registered engine or nil if none was linked in.
func Default() Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEngine
}
