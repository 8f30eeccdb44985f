package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/gstoney/mcwire/nbt"
)

var gzipMagic = []byte{0x1f, 0x8b}

func nbtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nbt <file>",
		Short: "Print an NBT file, raw or gzip compressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readNBTFile(args[0])
			if err != nil {
				return err
			}

			root, rest, err := nbt.DecodeRoot(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if len(rest) > 0 {
				a.log.Warn("trailing bytes after root tag", "file", args[0], "bytes", len(rest))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), root.String())
			return err
		},
	}
}

func readNBTFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
