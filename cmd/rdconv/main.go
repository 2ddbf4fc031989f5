package main

import (
	"os"
	"voltage-room-service/cmd/rdconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
