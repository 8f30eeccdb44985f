// Package v578 is the packet table of protocol 578, game version 1.15.2.
package v578

//go:generate go run ../../codegen/gen_packet_codec.go -- .

const (
	ProtocolName    = "Packet578"
	ProtocolVersion = 578
)
