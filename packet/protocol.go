package packet

import (
	"fmt"
	"slices"

	"github.com/scylladb/go-set/strset"
)

// Protocol is the packet table of one protocol version.
// It is immutable after construction and safe for concurrent use.
type Protocol struct {
	name    string
	version int32
	regs    []*Registration
	byID    map[Identity]*Registration
}

// NewProtocol builds the lookup table. Identities and names must be unique,
// and every registration needs a constructor.
func NewProtocol(name string, version int32, regs []Registration) (*Protocol, error) {
	p := &Protocol{
		name:    name,
		version: version,
		regs:    make([]*Registration, 0, len(regs)),
		byID:    make(map[Identity]*Registration, len(regs)),
	}

	regs = slices.Clone(regs)
	names := strset.NewWithSize(len(regs))
	for i := range regs {
		reg := &regs[i]
		if reg.New == nil {
			return nil, fmt.Errorf("%s: %s has no constructor", name, reg.Name)
		}
		if names.Has(reg.Name) {
			return nil, fmt.Errorf("%s: duplicate packet name %s", name, reg.Name)
		}
		if prev, ok := p.byID[reg.Identity]; ok {
			return nil, fmt.Errorf("%s: %s and %s share identity %s", name, prev.Name, reg.Name, reg.Identity)
		}

		names.Add(reg.Name)
		p.byID[reg.Identity] = reg
		p.regs = append(p.regs, reg)
	}
	return p, nil
}

// MustProtocol is NewProtocol for package-level tables.
func MustProtocol(name string, version int32, regs []Registration) *Protocol {
	p, err := NewProtocol(name, version, regs)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Protocol) Name() string {
	return p.name
}

func (p *Protocol) Version() int32 {
	return p.version
}

func (p *Protocol) Lookup(id Identity) (*Registration, bool) {
	reg, ok := p.byID[id]
	return reg, ok
}

// Raw resolves id and pairs it with an undecoded body. body is borrowed.
func (p *Protocol) Raw(id Identity, body []byte) (RawPacket, error) {
	reg, ok := p.byID[id]
	if !ok {
		return RawPacket{}, &UnknownIDError{Protocol: p.name, Identity: id}
	}
	return RawPacket{identity: id, body: body, reg: reg}, nil
}

// Decode resolves id and materializes body in one step.
func (p *Protocol) Decode(id Identity, body []byte) (Packet, error) {
	raw, err := p.Raw(id, body)
	if err != nil {
		return nil, err
	}
	return raw.Deserialize()
}

// Registrations returns the table in registration order.
func (p *Protocol) Registrations() []*Registration {
	return slices.Clone(p.regs)
}

// Describe returns the table as plain data.
func (p *Protocol) Describe() Spec {
	s := Spec{
		Name:    p.name,
		Version: p.version,
		Packets: make([]PacketSpec, 0, len(p.regs)),
	}
	for _, reg := range p.regs {
		s.Packets = append(s.Packets, PacketSpec{
			Name:      reg.Name,
			ID:        reg.Identity.ID,
			State:     reg.Identity.State,
			Direction: reg.Identity.Direction,
			Body:      reg.Body,
			Fields:    slices.Clone(reg.Fields),
		})
	}
	return s
}
