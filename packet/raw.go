package packet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/wire"
)

// RawPacket is a resolved identity with its body left undecoded.
// The body borrows from the buffer it was split from.
type RawPacket struct {
	identity Identity
	body     []byte
	reg      *Registration
}

func (p RawPacket) Identity() Identity {
	return p.identity
}

func (p RawPacket) Body() []byte {
	return p.body
}

func (p RawPacket) Registration() *Registration {
	return p.reg
}

func (p RawPacket) Name() string {
	return p.reg.Name
}

// Serialize writes the id and body unchanged, for relaying without decoding.
func (p RawPacket) Serialize(w io.Writer) error {
	if err := wire.WriteVarInt(w, p.identity.ID); err != nil {
		return err
	}
	_, err := w.Write(p.body)
	return err
}

// Deserialize decodes the body into the registered packet type. The whole
// body must be consumed.
func (p RawPacket) Deserialize() (Packet, error) {
	body := p.reg.New()
	r := wire.NewReader(p.body)
	if err := body.Deserialize(r); err != nil {
		return nil, &DeserializeFailedError{Packet: p.reg.Name, Err: err}
	}

	if r.Remaining() > 0 {
		return nil, &ExtraDataError{Packet: p.reg.Name, Data: bytes.Clone(r.Rest())}
	}
	return body, nil
}

// DeserializeAs decodes p and asserts it to *T.
func DeserializeAs[T any, PT interface {
	*T
	Packet
}](p RawPacket) (PT, error) {
	v, err := p.Deserialize()
	if err != nil {
		return nil, err
	}

	pt, ok := v.(PT)
	if !ok {
		return nil, fmt.Errorf("%s decodes to %T, not %T", p.identity, v, pt)
	}
	return pt, nil
}
