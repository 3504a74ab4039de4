//go:build wasip1

package hostcall

import (
	stderrors "errors"
	"unsafe"

	"github.com/wippyai/actor-sdk/errors"
)

// waPC guest ABI. The host implements these under the "wapc" module name;
// the signatures are a wire contract and must match exactly.

//go:wasmimport wapc __host_call
func wapcHostCall(bindingPtr, bindingLen, nsPtr, nsLen, opPtr, opLen, payloadPtr, payloadLen uint32) uint32

//go:wasmimport wapc __host_response
func wapcHostResponse(ptr uint32)

//go:wasmimport wapc __host_response_len
func wapcHostResponseLen() uint32

//go:wasmimport wapc __host_error
func wapcHostError(ptr uint32)

//go:wasmimport wapc __host_error_len
func wapcHostErrorLen() uint32

//go:wasmimport wapc __guest_request
func wapcGuestRequest(opPtr, payloadPtr uint32)

//go:wasmimport wapc __guest_response
func wapcGuestResponse(ptr, len uint32)

//go:wasmimport wapc __guest_error
func wapcGuestError(ptr, len uint32)

//go:wasmimport wapc __console_log
func wapcConsoleLog(ptr, len uint32)

func bytesPtr(b []byte) uint32 {
	if len(b) == 0 {
		// The host never dereferences a zero-length region but the ABI
		// still wants a valid pointer.
		b = []byte{0}
	}
	return uint32(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}

func stringPtr(s string) uint32 {
	if len(s) == 0 {
		return bytesPtr(nil)
	}
	return uint32(uintptr(unsafe.Pointer(unsafe.StringData(s))))
}

// platformTransport performs one blocking __host_call round trip.
func platformTransport(binding, capID, operation string, payload []byte) ([]byte, error) {
	ok := wapcHostCall(
		stringPtr(binding), uint32(len(binding)),
		stringPtr(capID), uint32(len(capID)),
		stringPtr(operation), uint32(len(operation)),
		bytesPtr(payload), uint32(len(payload)),
	)
	if ok == 0 {
		msg := make([]byte, wapcHostErrorLen())
		wapcHostError(bytesPtr(msg))
		return nil, errors.Host(errors.CapTransport, operation, stderrors.New(string(msg)))
	}

	resp := make([]byte, wapcHostResponseLen())
	wapcHostResponse(bytesPtr(resp))
	return resp, nil
}

// ConsoleLog writes a line to the host console, outside any logging binding.
func ConsoleLog(msg string) {
	wapcConsoleLog(stringPtr(msg), uint32(len(msg)))
}

// guestCall is the single entry point the host invokes to push an operation
// into the actor. It copies the operation name and payload out of host
// memory, runs the installed entry function, and reports the result back.
//
//go:wasmexport __guest_call
func guestCall(opLen, payloadLen uint32) uint32 {
	op := make([]byte, opLen)
	payload := make([]byte, payloadLen)
	wapcGuestRequest(bytesPtr(op), bytesPtr(payload))

	resp, err := invokeEntry(string(op), payload)
	if err != nil {
		msg := err.Error()
		wapcGuestError(stringPtr(msg), uint32(len(msg)))
		return 0
	}

	wapcGuestResponse(bytesPtr(resp), uint32(len(resp)))
	return 1
}
