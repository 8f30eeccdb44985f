// Package mcwire is a codec for the Minecraft Java Edition network protocol.
//
// The wire package holds the field codecs, nbt the NBT tree format, and
// packet the dispatch tables. This package lists the protocol versions that
// ship with the module.
package mcwire

import (
	"errors"
	"fmt"

	"github.com/gstoney/mcwire/packet"
	v578 "github.com/gstoney/mcwire/packet/v578"
	v753 "github.com/gstoney/mcwire/packet/v753"
)

var ErrUnsupportedVersion = errors.New("unsupported protocol version")

var protocols = []*packet.Protocol{
	v753.Protocol,
	v578.Protocol,
}

// Protocols returns the supported protocol tables, newest first.
func Protocols() []*packet.Protocol {
	return append([]*packet.Protocol(nil), protocols...)
}

func Lookup(version int32) (*packet.Protocol, error) {
	for _, p := range protocols {
		if p.Version() == version {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
}

func Latest() *packet.Protocol {
	return protocols[0]
}
