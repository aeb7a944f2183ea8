package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"schwarzschild/internal/config"
	"schwarzschild/internal/loop"
)

func main() {
	tuning, err := config.LoadTuning(config.GetEnv("SCHWARZSCHILD_TUNING", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Tuning: tuning}); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
