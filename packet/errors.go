package packet

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownID         = errors.New("unknown packet id")
	ErrExtraData         = errors.New("extra data after packet body")
	ErrDeserializeFailed = errors.New("packet deserialize failed")
)

// UnknownIDError is returned when an identity has no registration in a protocol.
type UnknownIDError struct {
	Protocol string
	Identity Identity
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("%v: %s in %s", ErrUnknownID, e.Identity, e.Protocol)
}

func (e *UnknownIDError) Is(target error) bool {
	return target == ErrUnknownID
}

// ExtraDataError holds a copy of the bytes left over after a packet decoded.
type ExtraDataError struct {
	Packet string
	Data   []byte
}

func (e *ExtraDataError) Error() string {
	return fmt.Sprintf("%v: %d bytes after %s", ErrExtraData, len(e.Data), e.Packet)
}

func (e *ExtraDataError) Is(target error) bool {
	return target == ErrExtraData
}

// DeserializeFailedError wraps the error from decoding a packet's fields.
type DeserializeFailedError struct {
	Packet string
	Err    error
}

func (e *DeserializeFailedError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrDeserializeFailed, e.Packet, e.Err)
}

func (e *DeserializeFailedError) Is(target error) bool {
	return target == ErrDeserializeFailed
}

func (e *DeserializeFailedError) Unwrap() error {
	return e.Err
}
