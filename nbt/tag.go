// Package nbt implements the Named Binary Tag format as it is embedded in
// packet fields: big-endian numbers, u16-length UTF-8 names and strings, and
// a root Compound.
package nbt

import "fmt"

type Kind byte

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

var kindNames = [...]string{
	KindEnd:       "END",
	KindByte:      "Byte",
	KindShort:     "Short",
	KindInt:       "Int",
	KindLong:      "Long",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindByteArray: "Byte_Array",
	KindString:    "String",
	KindList:      "List",
	KindCompound:  "Compound",
	KindIntArray:  "Int_Array",
	KindLongArray: "Long_Array",
}

func (k Kind) Valid() bool {
	return k <= KindLongArray
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
	return kindNames[k]
}

// Tag is one of the payload types below.
type Tag interface {
	Kind() Kind
	tag()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64

	// List elements all have the same Kind. An empty List is written with
	// End as its element kind.
	List []Tag

	// Compound children keep their wire order.
	Compound []NamedTag

	// End terminates a Compound. It never appears as a decoded child.
	End struct{}
)

func (Byte) Kind() Kind      { return KindByte }
func (Short) Kind() Kind     { return KindShort }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Float) Kind() Kind     { return KindFloat }
func (Double) Kind() Kind    { return KindDouble }
func (ByteArray) Kind() Kind { return KindByteArray }
func (String) Kind() Kind    { return KindString }
func (List) Kind() Kind      { return KindList }
func (Compound) Kind() Kind  { return KindCompound }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }
func (End) Kind() Kind       { return KindEnd }

func (Byte) tag()      {}
func (Short) tag()     {}
func (Int) tag()       {}
func (Long) tag()      {}
func (Float) tag()     {}
func (Double) tag()    {}
func (ByteArray) tag() {}
func (String) tag()    {}
func (List) tag()      {}
func (Compound) tag()  {}
func (IntArray) tag()  {}
func (LongArray) tag() {}
func (End) tag()       {}

// Get returns the first child with the given name.
func (c Compound) Get(name string) (Tag, bool) {
	for _, child := range c {
		if child.Name == name {
			return child.Payload, true
		}
	}
	return nil, false
}

type NamedTag struct {
	Name    string
	Payload Tag
}

// Named pairs t with a name.
func Named(name string, t Tag) NamedTag {
	return NamedTag{Name: name, Payload: t}
}

func (t NamedTag) IsEnd() bool {
	_, ok := t.Payload.(End)
	return ok
}
