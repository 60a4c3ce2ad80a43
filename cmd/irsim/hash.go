package main

import (
	"fmt"

	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/core"
	"github.com/spf13/cobra"
)

func hashRun(algo string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%s requires exactly one <hex> argument", algo)
		}
		msg := core.DecodeHex(args[0])
		h := newStdioHost(cmd.OutOrStdout())
		arena := core.NewArena()

		var out *core.ByteVector
		switch algo {
		case "sha256":
			out = core.Sha256(arena, h, msg)
		case "sm3":
			out = core.Sm3(arena, h, msg)
		case "keccak256":
			out = core.Keccak256(arena, h, msg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), core.EncodeHex(out.Bytes()))
		return nil
	}
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash hex-encoded input via the host-boundary hashing wrappers",
}

func init() {
	for _, algo := range []string{"sha256", "sm3", "keccak256"} {
		a := algo
		hashCmd.AddCommand(&cobra.Command{
			Use:   a + " <hex>",
			Short: "Compute the " + a + " digest of hex-encoded input",
			Args:  cobra.ExactArgs(1),
			RunE:  hashRun(a),
		})
	}
}

// HashCmd is registered onto the root command in main.go.
var HashCmd = hashCmd
