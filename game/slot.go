// Package game holds value types that several protocol versions share.
package game

import (
	"fmt"
	"io"

	"github.com/gstoney/mcwire/nbt"
	"github.com/gstoney/mcwire/wire"
)

// Slot is an item stack: a VarInt item id, an 8-bit count, and optional NBT.
// Absent NBT is written as a single End byte.
type Slot struct {
	ItemID int32
	Count  int8
	NBT    *nbt.NamedTag
}

func (s Slot) String() string {
	if s.NBT == nil {
		return fmt.Sprintf("Slot{%d x%d}", s.ItemID, s.Count)
	}
	return fmt.Sprintf("Slot{%d x%d %s}", s.ItemID, s.Count, s.NBT.Name)
}

func (s Slot) Serialize(w io.Writer) (err error) {
	if err = wire.WriteVarInt(w, s.ItemID); err != nil {
		return
	}
	if err = wire.WriteByte(w, s.Count); err != nil {
		return
	}

	if s.NBT == nil {
		return wire.WriteUnsignedByte(w, byte(nbt.KindEnd))
	}
	return nbt.WriteRoot(w, *s.NBT)
}

func (s *Slot) Deserialize(r *wire.Reader) (err error) {
	if s.ItemID, err = wire.ReadVarInt(r); err != nil {
		return
	}
	if s.Count, err = wire.ReadByte(r); err != nil {
		return
	}

	rest := r.Rest()
	if len(rest) > 0 && rest[0] == byte(nbt.KindEnd) {
		s.NBT = nil
		_, err = r.ReadByte()
		return
	}

	tag, err := nbt.ReadRoot(r)
	if err != nil {
		return
	}
	s.NBT = &tag
	return
}

func WriteSlot(w io.Writer, v Slot) error {
	return v.Serialize(w)
}

func ReadSlot(r *wire.Reader) (v Slot, err error) {
	err = v.Deserialize(r)
	return
}
