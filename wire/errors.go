package wire

import (
	"errors"
	"io"
)

// Deserialize errors.
var (
	// ErrEOF is returned when the input ends before a value is complete.
	ErrEOF = io.ErrUnexpectedEOF

	ErrVarNumTooLong      = errors.New("VarNum is too long")
	ErrNegativeLength     = errors.New("negative length")
	ErrBadStringEncoding  = errors.New("string is not valid UTF-8")
	ErrInvalidBool        = errors.New("invalid byte for Boolean field")
	ErrNbtUnknownTagType  = errors.New("unknown NBT tag type")
	ErrNbtBadLength       = errors.New("bad NBT length")
	ErrNbtInvalidStartTag = errors.New("NBT root must start with a Compound tag")

	// ErrCannotUnderstandValue is returned when a decoded value is outside
	// the set a field accepts, such as an unknown enum constant.
	ErrCannotUnderstandValue = errors.New("cannot understand value")
	ErrFailedJSONDeserialize = errors.New("failed to deserialize JSON")
)

// Serialize errors.
var (
	ErrFailedJSONEncode = errors.New("failed to encode JSON")

	// ErrCannotSerialize is returned when a value breaks a rule of its wire
	// form, like a list that must not be empty.
	ErrCannotSerialize = errors.New("cannot serialize value")
)

var deserializeErrs = []error{
	ErrEOF,
	ErrVarNumTooLong,
	ErrNegativeLength,
	ErrBadStringEncoding,
	ErrInvalidBool,
	ErrNbtUnknownTagType,
	ErrNbtBadLength,
	ErrNbtInvalidStartTag,
	ErrCannotUnderstandValue,
	ErrFailedJSONDeserialize,
}

var serializeErrs = []error{
	ErrFailedJSONEncode,
	ErrCannotSerialize,
}

// IsDeserializeErr reports whether err belongs to the deserialize taxonomy.
func IsDeserializeErr(err error) bool {
	return isAny(err, deserializeErrs)
}

// IsSerializeErr reports whether err belongs to the serialize taxonomy.
func IsSerializeErr(err error) bool {
	return isAny(err, serializeErrs)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
