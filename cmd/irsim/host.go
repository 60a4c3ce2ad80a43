package main

import (
	"fmt"
	"io"

	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/core"
)

// stdioHost is a core.Host that writes Println/Log output to a given
// writer immediately, instead of buffering it like core.LocalHost
// (which is built for tests, not interactive output). Hashing and
// signature verification delegate to an embedded LocalHost so this
// file doesn't re-derive crypto wiring.
type stdioHost struct {
	*core.LocalHost
	out io.Writer
}

func newStdioHost(out io.Writer) *stdioHost {
	return &stdioHost{LocalHost: core.NewLocalHost(), out: out}
}

func (h *stdioHost) Println(msg []byte) {
	fmt.Fprintln(h.out, string(msg))
}

func (h *stdioHost) Log(topics [][]byte, desc []byte) {
	for _, t := range topics {
		fmt.Fprintf(h.out, "[log topic=%x] %s\n", t, string(desc))
	}
}
