package main

import (
	"fmt"
	"os"

	"vrhal/internal/vrctl"
)

func main() {
	if err := vrctl.BuildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
