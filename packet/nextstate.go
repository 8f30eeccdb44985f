package packet

import (
	"fmt"
	"io"

	"github.com/gstoney/mcwire/wire"
)

// NextState is the Handshake field selecting Status or Login.
type NextState int32

const (
	NextStatus NextState = 1
	NextLogin  NextState = 2
)

func (n NextState) State() State {
	if n == NextLogin {
		return Login
	}
	return Status
}

func (n NextState) String() string {
	switch n {
	case NextStatus:
		return "Status"
	case NextLogin:
		return "Login"
	}
	return fmt.Sprintf("NextState(%d)", int32(n))
}

func (n NextState) Serialize(w io.Writer) error {
	if n != NextStatus && n != NextLogin {
		return fmt.Errorf("%w: %s", wire.ErrCannotSerialize, n)
	}
	return wire.WriteVarInt(w, int32(n))
}

func (n *NextState) Deserialize(r *wire.Reader) error {
	v, err := wire.ReadVarInt(r)
	if err != nil {
		return err
	}

	switch NextState(v) {
	case NextStatus, NextLogin:
		*n = NextState(v)
		return nil
	}
	return fmt.Errorf("%w: next state %d", wire.ErrCannotUnderstandValue, v)
}
