package game

import (
	"io"

	"github.com/gstoney/mcwire/wire"
)

// ExplosionRecord is the offset of one destroyed block from the explosion
// center.
type ExplosionRecord struct {
	X, Y, Z int8
}

func (e ExplosionRecord) Serialize(w io.Writer) (err error) {
	_, err = w.Write([]byte{byte(e.X), byte(e.Y), byte(e.Z)})
	return
}

func (e *ExplosionRecord) Deserialize(r *wire.Reader) error {
	b, err := r.Read(3)
	if err != nil {
		return err
	}
	e.X, e.Y, e.Z = int8(b[0]), int8(b[1]), int8(b[2])
	return nil
}
