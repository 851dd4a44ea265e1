//go:build otf2

// Package otf2c implements native.Engine over libotf2. Importing it
// registers the engine as the default:
//
//	import _ "github.com/getsentry/otf2/internal/native/otf2c"
//
// Build with -tags otf2 against an installed libotf2.
package otf2c

/*
#cgo LDFLAGS: -lotf2
#include <stdint.h>
#include <stdlib.h>
#include <otf2/otf2.h>
*/
import "C"

import (
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/getsentry/otf2/internal/native"
)

func init() {
	native.Register(New())
}

type (
	// Engine forwards every call to libotf2. Callback tables are bound to
	// the C user data through cgo handles stored in C memory.
	Engine struct {
		mu          sync.Mutex
		defBindings map[*native.GlobalDefReader]*C.uintptr_t
		evtBindings map[*native.GlobalEvtReader]*C.uintptr_t
	}

	defBinding struct {
		callbacks *native.GlobalDefCallbacks
		userData  native.UserData
	}

	evtBinding struct {
		callbacks *native.GlobalEvtCallbacks
		userData  native.UserData
	}
)

func New() *Engine {
	return &Engine{
		defBindings: make(map[*native.GlobalDefReader]*C.uintptr_t),
		evtBindings: make(map[*native.GlobalEvtReader]*C.uintptr_t),
	}
}

func bind(v any) *C.uintptr_t {
	cell := (*C.uintptr_t)(C.malloc(C.size_t(unsafe.Sizeof(C.uintptr_t(0)))))
	*cell = C.uintptr_t(cgo.NewHandle(v))
	return cell
}

func unbind(cell *C.uintptr_t) {
	if cell == nil {
		return
	}
	cgo.Handle(*cell).Delete()
	C.free(unsafe.Pointer(cell))
}

func defBindingOf(p unsafe.Pointer) *defBinding {
	return cgo.Handle(*(*C.uintptr_t)(p)).Value().(*defBinding)
}

func evtBindingOf(p unsafe.Pointer) *evtBinding {
	return cgo.Handle(*(*C.uintptr_t)(p)).Value().(*evtBinding)
}

func header(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, attributes *C.OTF2_AttributeList) native.EventHeader {
	return native.EventHeader{
		Location:   native.LocationRef(location),
		Time:       native.TimeStamp(time),
		Attributes: (*native.AttributeList)(unsafe.Pointer(attributes)),
	}
}

func convertSlice[From, To any](p *From, n int, f func(From) To) []To {
	if p == nil || n == 0 {
		return nil
	}
	src := unsafe.Slice(p, n)
	dst := make([]To, n)
	for i, v := range src {
		dst[i] = f(v)
	}
	return dst
}

func callbackCode(code native.CallbackCode) C.OTF2_CallbackCode {
	switch code {
	case native.CallbackSuccess:
		return C.OTF2_CALLBACK_SUCCESS
	case native.CallbackInterrupt:
		return C.OTF2_CALLBACK_INTERRUPT
	}
	return C.OTF2_CALLBACK_ERROR
}

func typeOf(t C.OTF2_Type) native.Type {
	switch t {
	case C.OTF2_TYPE_UINT8:
		return native.TypeUint8
	case C.OTF2_TYPE_UINT16:
		return native.TypeUint16
	case C.OTF2_TYPE_UINT32:
		return native.TypeUint32
	case C.OTF2_TYPE_UINT64:
		return native.TypeUint64
	case C.OTF2_TYPE_INT8:
		return native.TypeInt8
	case C.OTF2_TYPE_INT16:
		return native.TypeInt16
	case C.OTF2_TYPE_INT32:
		return native.TypeInt32
	case C.OTF2_TYPE_INT64:
		return native.TypeInt64
	case C.OTF2_TYPE_FLOAT:
		return native.TypeFloat
	case C.OTF2_TYPE_DOUBLE:
		return native.TypeDouble
	case C.OTF2_TYPE_STRING:
		return native.TypeString
	case C.OTF2_TYPE_ATTRIBUTE:
		return native.TypeAttribute
	case C.OTF2_TYPE_LOCATION:
		return native.TypeLocation
	case C.OTF2_TYPE_REGION:
		return native.TypeRegion
	case C.OTF2_TYPE_GROUP:
		return native.TypeGroup
	case C.OTF2_TYPE_METRIC:
		return native.TypeMetric
	case C.OTF2_TYPE_COMM:
		return native.TypeComm
	case C.OTF2_TYPE_PARAMETER:
		return native.TypeParameter
	case C.OTF2_TYPE_RMA_WIN:
		return native.TypeRmaWin
	case C.OTF2_TYPE_SOURCE_CODE_LOCATION:
		return native.TypeSourceCodeLocation
	case C.OTF2_TYPE_CALLING_CONTEXT:
		return native.TypeCallingContext
	case C.OTF2_TYPE_INTERRUPT_GENERATOR:
		return native.TypeInterruptGenerator
	case C.OTF2_TYPE_IO_FILE:
		return native.TypeIoFile
	case C.OTF2_TYPE_IO_HANDLE:
		return native.TypeIoHandle
	case C.OTF2_TYPE_LOCATION_GROUP:
		return native.TypeLocationGroup
	}
	return native.TypeNone
}

func reader(r *native.Reader) *C.OTF2_Reader {
	return (*C.OTF2_Reader)(unsafe.Pointer(r))
}

func (e *Engine) ErrorName(code native.Code) string {
	return C.GoString(C.OTF2_Error_GetName(C.OTF2_ErrorCode(code)))
}

func (e *Engine) ErrorDescription(code native.Code) string {
	return C.GoString(C.OTF2_Error_GetDescription(C.OTF2_ErrorCode(code)))
}

func (e *Engine) ReaderOpen(path string) *native.Reader {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return (*native.Reader)(unsafe.Pointer(C.OTF2_Reader_Open(cpath)))
}

func (e *Engine) ReaderClose(r *native.Reader) native.Code {
	return native.Code(C.OTF2_Reader_Close(reader(r)))
}

func (e *Engine) ReaderSetSerialCollectiveCallbacks(r *native.Reader) native.Code {
	return native.Code(C.OTF2_Reader_SetSerialCollectiveCallbacks(reader(r)))
}

func (e *Engine) ReaderGetNumberOfLocations(r *native.Reader) (uint64, native.Code) {
	var n C.uint64_t
	code := C.OTF2_Reader_GetNumberOfLocations(reader(r), &n)
	return uint64(n), native.Code(code)
}

func (e *Engine) ReaderGetGlobalDefReader(r *native.Reader) *native.GlobalDefReader {
	return (*native.GlobalDefReader)(unsafe.Pointer(C.OTF2_Reader_GetGlobalDefReader(reader(r))))
}

func (e *Engine) ReaderCloseGlobalDefReader(r *native.Reader, dr *native.GlobalDefReader) native.Code {
	code := C.OTF2_Reader_CloseGlobalDefReader(reader(r), (*C.OTF2_GlobalDefReader)(unsafe.Pointer(dr)))
	e.mu.Lock()
	unbind(e.defBindings[dr])
	delete(e.defBindings, dr)
	e.mu.Unlock()
	return native.Code(code)
}

func (e *Engine) ReaderRegisterGlobalDefCallbacks(r *native.Reader, dr *native.GlobalDefReader, cbs *native.GlobalDefCallbacks, ud native.UserData) native.Code {
	c := C.OTF2_GlobalDefReaderCallbacks_New()
	if c == nil {
		return native.Code(C.OTF2_ERROR_MEM_ALLOC_FAILED)
	}
	defer C.OTF2_GlobalDefReaderCallbacks_Delete(c)
	if code := setDefCallbacks(c, cbs); code != C.OTF2_SUCCESS {
		return native.Code(code)
	}

	cell := bind(&defBinding{callbacks: cbs, userData: ud})
	code := C.OTF2_Reader_RegisterGlobalDefCallbacks(reader(r), (*C.OTF2_GlobalDefReader)(unsafe.Pointer(dr)), c, unsafe.Pointer(cell))
	if code != C.OTF2_SUCCESS {
		unbind(cell)
		return native.Code(code)
	}
	e.mu.Lock()
	unbind(e.defBindings[dr])
	e.defBindings[dr] = cell
	e.mu.Unlock()
	return native.Success
}

func (e *Engine) ReaderReadAllGlobalDefinitions(r *native.Reader, dr *native.GlobalDefReader) (uint64, native.Code) {
	var n C.uint64_t
	code := C.OTF2_Reader_ReadAllGlobalDefinitions(reader(r), (*C.OTF2_GlobalDefReader)(unsafe.Pointer(dr)), &n)
	return uint64(n), native.Code(code)
}

func (e *Engine) ReaderSelectLocation(r *native.Reader, location native.LocationRef) native.Code {
	return native.Code(C.OTF2_Reader_SelectLocation(reader(r), C.OTF2_LocationRef(location)))
}

func (e *Engine) ReaderOpenDefFiles(r *native.Reader) native.Code {
	return native.Code(C.OTF2_Reader_OpenDefFiles(reader(r)))
}

func (e *Engine) ReaderCloseDefFiles(r *native.Reader) native.Code {
	return native.Code(C.OTF2_Reader_CloseDefFiles(reader(r)))
}

func (e *Engine) ReaderGetDefReader(r *native.Reader, location native.LocationRef) *native.DefReader {
	return (*native.DefReader)(unsafe.Pointer(C.OTF2_Reader_GetDefReader(reader(r), C.OTF2_LocationRef(location))))
}

func (e *Engine) ReaderReadAllLocalDefinitions(r *native.Reader, dr *native.DefReader) (uint64, native.Code) {
	var n C.uint64_t
	code := C.OTF2_Reader_ReadAllLocalDefinitions(reader(r), (*C.OTF2_DefReader)(unsafe.Pointer(dr)), &n)
	return uint64(n), native.Code(code)
}

func (e *Engine) ReaderCloseDefReader(r *native.Reader, dr *native.DefReader) native.Code {
	return native.Code(C.OTF2_Reader_CloseDefReader(reader(r), (*C.OTF2_DefReader)(unsafe.Pointer(dr))))
}

func (e *Engine) ReaderOpenEvtFiles(r *native.Reader) native.Code {
	return native.Code(C.OTF2_Reader_OpenEvtFiles(reader(r)))
}

func (e *Engine) ReaderCloseEvtFiles(r *native.Reader) native.Code {
	return native.Code(C.OTF2_Reader_CloseEvtFiles(reader(r)))
}

func (e *Engine) ReaderGetEvtReader(r *native.Reader, location native.LocationRef) *native.EvtReader {
	return (*native.EvtReader)(unsafe.Pointer(C.OTF2_Reader_GetEvtReader(reader(r), C.OTF2_LocationRef(location))))
}

func (e *Engine) ReaderGetGlobalEvtReader(r *native.Reader) *native.GlobalEvtReader {
	return (*native.GlobalEvtReader)(unsafe.Pointer(C.OTF2_Reader_GetGlobalEvtReader(reader(r))))
}

func (e *Engine) ReaderCloseGlobalEvtReader(r *native.Reader, er *native.GlobalEvtReader) native.Code {
	code := C.OTF2_Reader_CloseGlobalEvtReader(reader(r), (*C.OTF2_GlobalEvtReader)(unsafe.Pointer(er)))
	e.mu.Lock()
	unbind(e.evtBindings[er])
	delete(e.evtBindings, er)
	e.mu.Unlock()
	return native.Code(code)
}

func (e *Engine) ReaderRegisterGlobalEvtCallbacks(r *native.Reader, er *native.GlobalEvtReader, cbs *native.GlobalEvtCallbacks, ud native.UserData) native.Code {
	c := C.OTF2_GlobalEvtReaderCallbacks_New()
	if c == nil {
		return native.Code(C.OTF2_ERROR_MEM_ALLOC_FAILED)
	}
	defer C.OTF2_GlobalEvtReaderCallbacks_Delete(c)
	if code := setEvtCallbacks(c, cbs); code != C.OTF2_SUCCESS {
		return native.Code(code)
	}

	cell := bind(&evtBinding{callbacks: cbs, userData: ud})
	code := C.OTF2_Reader_RegisterGlobalEvtCallbacks(reader(r), (*C.OTF2_GlobalEvtReader)(unsafe.Pointer(er)), c, unsafe.Pointer(cell))
	if code != C.OTF2_SUCCESS {
		unbind(cell)
		return native.Code(code)
	}
	e.mu.Lock()
	unbind(e.evtBindings[er])
	e.evtBindings[er] = cell
	e.mu.Unlock()
	return native.Success
}

func (e *Engine) GlobalEvtReaderReadEvents(er *native.GlobalEvtReader, recordsToRead uint64) (uint64, native.Code) {
	var n C.uint64_t
	code := C.OTF2_GlobalEvtReader_ReadEvents((*C.OTF2_GlobalEvtReader)(unsafe.Pointer(er)), C.uint64_t(recordsToRead), &n)
	return uint64(n), native.Code(code)
}

func (e *Engine) AttributeListGetNumberOfElements(l *native.AttributeList) uint32 {
	return uint32(C.OTF2_AttributeList_GetNumberOfElements((*C.OTF2_AttributeList)(unsafe.Pointer(l))))
}

func (e *Engine) AttributeListGetAttributeByIndex(l *native.AttributeList, index uint32) (native.AttributeRef, native.Type, native.RawValue, native.Code) {
	var (
		ref   C.OTF2_AttributeRef
		typ   C.OTF2_Type
		value C.OTF2_AttributeValue
	)
	code := C.OTF2_AttributeList_GetAttributeByIndex((*C.OTF2_AttributeList)(unsafe.Pointer(l)), C.uint32_t(index), &ref, &typ, &value)
	return native.AttributeRef(ref), typeOf(typ), native.RawValue(value), native.Code(code)
}
