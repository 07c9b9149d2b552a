// Command vfmatch matches attributed graphs stored in binary or text files.
//
//	vfmatch match A.bin B.bin
//	vfmatch batch listA.txt listB.txt -o time.tsv
//	vfmatch features A.bin B.bin --features decay
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "vfmatch:", err)
		stop()
		os.Exit(1)
	}
}
