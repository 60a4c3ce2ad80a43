package main

import (
	"fmt"

	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/core"
	"github.com/spf13/cobra"
)

func descriptorsPrint(cmd *cobra.Command, args []string) error {
	name := "account"
	if len(args) > 0 {
		name = args[0]
	}
	if name != "account" {
		return fmt.Errorf("unknown demo descriptor: %s (only \"account\" is bootstrapped)", name)
	}
	d, ty := demoAccountDescriptors()
	h := newStdioHost(cmd.OutOrStdout())
	core.PrintType(d, h, ty)
	return nil
}

var descriptorsCmd = &cobra.Command{
	Use:   "descriptors",
	Short: "Inspect bootstrapped runtime type descriptors",
}

func init() {
	descriptorsCmd.AddCommand(&cobra.Command{
		Use:   "print [name]",
		Short: "Print a demo descriptor's shape (default: account)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  descriptorsPrint,
	})
}

// DescriptorsCmd is registered onto the root command in main.go.
var DescriptorsCmd = descriptorsCmd
