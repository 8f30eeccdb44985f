package v753

import (
	"encoding/json"

	"github.com/gstoney/mcwire/wire"
)

// @gen:Status,ServerBound
type StatusRequest struct{}

func (p StatusRequest) ID() int32 {
	return 0x00
}

// @gen:Status,ServerBound
type StatusPing struct {
	Payload int64 `field:"Long"`
}

func (p StatusPing) ID() int32 {
	return 0x01
}

// @gen:Status,ClientBound
type StatusResponse struct {
	Response wire.JSON[json.RawMessage] `field:"Value" kind:"Json"`
}

func (p StatusResponse) ID() int32 {
	return 0x00
}

// @gen:Status,ClientBound
type StatusPong struct {
	Payload int64 `field:"Long"`
}

func (p StatusPong) ID() int32 {
	return 0x01
}
