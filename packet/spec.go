package packet

// Spec is a protocol table as plain data, for documentation and tooling.
type Spec struct {
	Name    string       `toml:"name" json:"name"`
	Version int32        `toml:"version" json:"version"`
	Packets []PacketSpec `toml:"packets" json:"packets"`
}

type PacketSpec struct {
	Name      string    `toml:"name" json:"name"`
	ID        int32     `toml:"id" json:"id"`
	State     State     `toml:"state" json:"state"`
	Direction Direction `toml:"direction" json:"direction"`
	Body      string    `toml:"body" json:"body"`
	Fields    []Field   `toml:"fields" json:"fields"`
}
