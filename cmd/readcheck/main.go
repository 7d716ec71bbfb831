package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/pthm/readcheck/internal/cmd"
	"github.com/pthm/readcheck/internal/version"
)

func main() {
	err := fang.Execute(context.Background(), cmd.RootCmd, fang.WithVersion(version.Short()))
	if err != nil {
		os.Exit(1)
	}
}
