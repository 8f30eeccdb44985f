// Package v753 is the packet table of protocol 753, game version 1.16.3.
//
// Compared with 578 most play ids moved down by one or two, LoginSuccess
// carries a binary UUID, chat messages name their sender, and entity
// equipment became a list.
package v753

//go:generate go run ../../codegen/gen_packet_codec.go -- .

const (
	ProtocolName    = "Packet753"
	ProtocolVersion = 753
)
