package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(orNA(buildVersion)),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
