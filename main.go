// ABOUTME: Entry point for the taskman CLI
// ABOUTME: Terminal client for the task manager service

package main

import (
	"fmt"
	"os"

	"github.com/liubkkkko/taskManager/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
