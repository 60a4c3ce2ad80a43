// Command irsim is a small inspection CLI over this module's runtime
// support library: it bootstraps a demo descriptor table and exercises
// the codecs, host-boundary hashing, and coverage log against it. It is
// grounded on the teacher's cmd/cli one-file-per-subsystem idiom, with
// every subsystem file registering its own cobra.Command onto the root.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("component", "irsim")

func main() {
	root := &cobra.Command{
		Use:   "irsim",
		Short: "Inspect and exercise the smart-contract IR runtime support library",
	}
	root.AddCommand(DescriptorsCmd)
	root.AddCommand(CodecCmd)
	root.AddCommand(HashCmd)
	root.AddCommand(CoverageCmd)

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("irsim failed")
		os.Exit(1)
	}
}
