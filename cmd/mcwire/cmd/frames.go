package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/scylladb/go-set/strset"
	"github.com/spf13/cobra"

	"github.com/gstoney/mcwire/internal/capture"
	"github.com/gstoney/mcwire/packet"
)

func framesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames <file>",
		Short: "Decode every packet of a capture file",
		Long: `Decode every packet of a capture file, following state changes made by
Handshake and LoginSuccess. Packets that fail to decode are logged and
skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.stateFlag(cmd, "state")
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			r := capture.NewReader(f, a.cfg.MaxFrameLen)
			tr := capture.Tracker{State: s}
			seen := strset.New()
			var total, failed int

			for {
				rec, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("record %d: %w", total, err)
				}
				total++

				id := packet.Identity{ID: rec.ID, State: tr.State, Direction: rec.Direction}
				p, err := tr.Decode(a.proto, rec)
				if err != nil {
					failed++
					a.log.Warn("decode failed", "record", total-1, "identity", id.String(), "err", err)
					continue
				}
				seen.Add(p.PacketName())

				if err := a.printPacket(out, p); err != nil {
					return err
				}
			}

			names := seen.List()
			sort.Strings(names)
			_, err = fmt.Fprintf(out, "%d packets, %d failed, %d kinds: %s\n", total, failed, len(names), strings.Join(names, ", "))
			return err
		},
	}

	cmd.Flags().StringP("state", "s", "", "state at the start of the capture (default from config)")
	return cmd
}
