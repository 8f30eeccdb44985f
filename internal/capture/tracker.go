package capture

import "github.com/gstoney/mcwire/packet"

// Tracker follows the connection state of a capture. Packet ids only mean
// something within a state, so every record is decoded in Tracker.State.
type Tracker struct {
	State packet.State
}

// Observe advances the state after p was seen. It reports whether the state
// changed.
func (t *Tracker) Observe(p packet.Packet) bool {
	tr, ok := p.(packet.Transitioner)
	if !ok {
		return false
	}
	next := tr.Transition()
	if next == t.State {
		return false
	}
	t.State = next
	return true
}

// Decode materializes rec in the current state and then observes it.
func (t *Tracker) Decode(proto *packet.Protocol, rec Record) (packet.Packet, error) {
	p, err := proto.Decode(packet.Identity{ID: rec.ID, State: t.State, Direction: rec.Direction}, rec.Body)
	if err != nil {
		return nil, err
	}
	t.Observe(p)
	return p, nil
}
