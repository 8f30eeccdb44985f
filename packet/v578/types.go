package v578

import (
	"fmt"
	"io"

	"github.com/gstoney/mcwire/game"
	"github.com/gstoney/mcwire/wire"
)

func writeOptionalSlot(w io.Writer, v wire.Optional[game.Slot]) error {
	return wire.WriteOptional(w, v, game.WriteSlot)
}

func readOptionalSlot(r *wire.Reader) (wire.Optional[game.Slot], error) {
	return wire.ReadOptional(r, game.ReadSlot)
}

// Equipment slots are a VarInt in this version.
func writeEquipmentSlot(w io.Writer, v game.EquipmentSlot) error {
	if !v.Valid() {
		return fmt.Errorf("%w: equipment slot %d", wire.ErrCannotSerialize, v)
	}
	return wire.WriteVarInt(w, int32(v))
}

func readEquipmentSlot(r *wire.Reader) (game.EquipmentSlot, error) {
	n, err := wire.ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > int32(game.ArmorHelmet) {
		return 0, fmt.Errorf("%w: equipment slot %d", wire.ErrCannotUnderstandValue, n)
	}
	return game.EquipmentSlot(n), nil
}
