package main

import (
	"errors"
	"os"

	"github.com/setanarut/bmpgrad/internal/commands"
)

func main() {
	err := commands.Execute()
	if err != nil {
		exitCodeError := &commands.ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		} else {
			os.Exit(commands.ExitCodeInvalidArguments)
		}
	}
}
