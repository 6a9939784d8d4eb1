package main

import (
	"github.com/sirupsen/logrus"

	"tableflip.dev/daybook/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		logrus.Fatalf("error during command execution: %v", err)
	}
}
