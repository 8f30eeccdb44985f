// Package packet maps packet ids to typed packets for one protocol version at
// a time. Version packages supply the tables; this package supplies the
// lookup, the raw/materialized split and the dispatch errors.
package packet

import (
	"github.com/gstoney/mcwire/wire"
)

// Packet is a materialized packet of some protocol version.
type Packet interface {
	wire.Serializer

	// ID is the numeric id within Identity().State and Identity().Direction.
	ID() int32
	Identity() Identity
	PacketName() string
}

// Body is a Packet that can decode itself from a packet body.
type Body interface {
	Packet
	wire.Deserializer
}

// Field describes one wire field of a packet, in order.
type Field struct {
	Name string `toml:"name" json:"name"`
	Kind string `toml:"kind" json:"kind"`
}

// Registration binds an identity to a packet schema.
type Registration struct {
	Name     string
	Identity Identity
	// Body is the Go type name of the packet struct.
	Body   string
	Fields []Field
	New    func() Body
}

// Transitioner is implemented by packets that move the connection into a
// new state once sent, like Handshake and LoginSuccess.
type Transitioner interface {
	Packet
	Transition() State
}
