package cmd

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lpwan-io/cayennelpp"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hex encoded payload]",
	Short: "Decode a hex encoded Cayenne LPP payload to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return errors.Wrap(err, "decode hex payload error")
		}

		d := cayennelpp.NewDecoder()
		decoded, err := d.Decode(b)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(decoded)
	},
}
