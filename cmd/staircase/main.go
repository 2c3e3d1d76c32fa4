package main

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"

	"go.llib.dev/staircase/internal/staircase"
)

func main() {
	var c staircase.Config
	if err := env.Load(&c); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cli.ExitCodeBadRequest)
	}
	cli.Main(context.Background(), staircase.Command{
		Logger: c.Logger(os.Stderr),
	})
}
