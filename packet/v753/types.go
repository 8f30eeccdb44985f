package v753

import (
	"fmt"
	"io"

	"github.com/gstoney/mcwire/game"
	"github.com/gstoney/mcwire/wire"
)

// EquipmentEntry is one slot of an EquipmentArray.
type EquipmentEntry struct {
	Slot game.EquipmentSlot
	Item game.Slot
}

// EquipmentArray is a non-empty list of equipment entries. Each entry starts
// with its slot byte; the top bit of that byte is set on every entry but the
// last.
type EquipmentArray []EquipmentEntry

func (a EquipmentArray) Serialize(w io.Writer) error {
	if len(a) == 0 {
		return fmt.Errorf("%w: empty equipment array", wire.ErrCannotSerialize)
	}

	for i, e := range a {
		if !e.Slot.Valid() {
			return fmt.Errorf("%w: equipment slot %d", wire.ErrCannotSerialize, e.Slot)
		}
		b := uint8(e.Slot)
		if i < len(a)-1 {
			b |= 0x80
		}
		if err := wire.WriteUnsignedByte(w, b); err != nil {
			return err
		}
		if err := e.Item.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *EquipmentArray) Deserialize(r *wire.Reader) error {
	var entries EquipmentArray
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		slot := game.EquipmentSlot(b & 0x7f)
		if !slot.Valid() {
			return fmt.Errorf("%w: equipment slot %d", wire.ErrCannotUnderstandValue, slot)
		}

		e := EquipmentEntry{Slot: slot}
		if err := e.Item.Deserialize(r); err != nil {
			return err
		}
		entries = append(entries, e)

		if b&0x80 == 0 {
			break
		}
	}
	*a = entries
	return nil
}
