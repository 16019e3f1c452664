// Package main is the entry point for the yomu CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/yomu/cmd"
	"github.com/huangsam/yomu/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "Warn failed to stop profiling:", stopErr)
	}
	iocache.CloseStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
