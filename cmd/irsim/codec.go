package main

import (
	"fmt"

	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/core"
	"github.com/spf13/cobra"
)

func codecRun(cmd *cobra.Command, encodeFn func(d *core.Descriptors, ty core.TypeRef, v *core.Value) []byte,
	decodeFn func(d *core.Descriptors, arena *core.Arena, ty core.TypeRef, data []byte) *core.Value) error {
	d, ty := demoAccountDescriptors()
	arena := core.NewArena()
	v := demoAccountValue(d, arena, ty)

	encoded := encodeFn(d, ty, v)
	fmt.Fprintf(cmd.OutOrStdout(), "encoded: %s\n", core.EncodeHex(encoded))

	decoded := decodeFn(d, arena, ty, encoded)
	roundTripped := decodeFn(d, arena, ty, encodeFn(d, ty, decoded))
	reEncoded := encodeFn(d, ty, roundTripped)
	fmt.Fprintf(cmd.OutOrStdout(), "round-trip ok: %v\n", core.EncodeHex(reEncoded) == core.EncodeHex(encoded))
	return nil
}

func codecDataStreamRun(cmd *cobra.Command, args []string) error {
	return codecRun(cmd,
		func(d *core.Descriptors, ty core.TypeRef, v *core.Value) []byte {
			s := core.NewByteStream()
			core.EncodeValue(d, s, ty, v)
			return s.Bytes()
		},
		func(d *core.Descriptors, arena *core.Arena, ty core.TypeRef, data []byte) *core.Value {
			return core.DecodeValue(d, arena, core.NewByteStreamFromBytes(data), ty)
		})
}

func codecSSZRun(cmd *cobra.Command, args []string) error {
	return codecRun(cmd,
		core.EncodeSSZ,
		func(d *core.Descriptors, arena *core.Arena, ty core.TypeRef, data []byte) *core.Value {
			return core.DecodeSSZ(d, arena, ty, data, false)
		})
}

func codecRLPRun(cmd *cobra.Command, args []string) error {
	return codecRun(cmd, core.EncodeRLP, core.DecodeRLP)
}

func codecJSONRun(cmd *cobra.Command, args []string) error {
	d, ty := demoAccountDescriptors()
	arena := core.NewArena()
	v := demoAccountValue(d, arena, ty)
	encoded := core.EncodeJSON(d, arena, ty, v)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", string(encoded))
	decoded := core.DecodeJSON(d, arena, ty, encoded)
	reEncoded := core.EncodeJSON(d, arena, ty, decoded)
	fmt.Fprintf(cmd.OutOrStdout(), "round-trip ok: %v\n", string(reEncoded) == string(encoded))
	return nil
}

var codecCmd = &cobra.Command{
	Use:   "codec",
	Short: "Round-trip the demo account value through a codec",
}

func init() {
	ssz := &cobra.Command{Use: "ssz", Short: "SSZ codec"}
	ssz.AddCommand(&cobra.Command{Use: "roundtrip", Short: "Encode then decode the demo account", RunE: codecSSZRun})

	rlp := &cobra.Command{Use: "rlp", Short: "RLP codec"}
	rlp.AddCommand(&cobra.Command{Use: "roundtrip", Short: "Encode then decode the demo account", RunE: codecRLPRun})

	datastream := &cobra.Command{Use: "datastream", Short: "Data-stream (ULEB128) codec"}
	datastream.AddCommand(&cobra.Command{Use: "roundtrip", Short: "Encode then decode the demo account", RunE: codecDataStreamRun})

	jsonCmd := &cobra.Command{Use: "json", Short: "JSON codec"}
	jsonCmd.AddCommand(&cobra.Command{Use: "roundtrip", Short: "Encode then decode the demo account", RunE: codecJSONRun})

	codecCmd.AddCommand(ssz, rlp, datastream, jsonCmd)
}

// CodecCmd is registered onto the root command in main.go.
var CodecCmd = codecCmd
