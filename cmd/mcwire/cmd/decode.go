package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gstoney/mcwire/packet"
)

func decodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode one packet given as hex, id included",
		Long: `Decode one packet. The argument is the packet id followed by its
fields, as hex. Whitespace is ignored.

Example:
  mcwire decode --state status --direction serverbound "01 00000000 0000002a"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.stateFlag(cmd, "state")
			if err != nil {
				return err
			}
			d, err := a.directionFlag(cmd, "direction")
			if err != nil {
				return err
			}

			data, err := hex.DecodeString(strings.Join(strings.Fields(args[0]), ""))
			if err != nil {
				return fmt.Errorf("bad hex: %w", err)
			}

			p, err := a.proto.Unmarshal(s, d, data)
			if err != nil {
				return err
			}
			return a.printPacket(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().StringP("state", "s", "", "connection state (default from config)")
	cmd.Flags().StringP("direction", "d", "", "serverbound or clientbound (default from config)")
	return cmd
}

func (a *app) printPacket(w io.Writer, p packet.Packet) error {
	if a.cfg.Format == "json" {
		b, err := json.Marshal(struct {
			Identity string        `json:"identity"`
			Name     string        `json:"name"`
			Packet   packet.Packet `json:"packet"`
		}{p.Identity().String(), p.PacketName(), p})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	_, err := fmt.Fprintf(w, "%s %s %+v\n", p.Identity(), p.PacketName(), p)
	return err
}
