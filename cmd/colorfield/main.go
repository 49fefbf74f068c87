// Command colorfield computes the color-distance field of an image from an
// origin pixel and writes it out as PNG images.
//
// Usage:
//
//	colorfield trace tree.jpg --origin 225,225 --out ./out
//	colorfield trace --config colorfield.yaml
//	colorfield version
//
// While the search runs, out/progress.png is refreshed with the latest
// snapshot; when it completes, one PNG per configured converter is written
// (gray.png, gradient.png, orientation.png by default).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "colorfield:", err)
		stop()
		os.Exit(1)
	}
}
