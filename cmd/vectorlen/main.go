package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/vectorlen/internal/form"
	"github.com/csheth/vectorlen/internal/tui"
)

func main() {
	dimension := flag.Int("dim", 2, "initial vector dimension (2-6)")
	mode := flag.String("mode", string(form.ModeCoordinates), "initial input mode (coords or points)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	logPath := flag.String("log", os.Getenv("VECTORLEN_LOG"), "write debug logs to this file (env VECTORLEN_LOG)")
	flag.Parse()

	dim := form.Dimension(*dimension)
	if !dim.Valid() {
		fmt.Println("invalid dimension:", *dimension, "(supported: 2-6)")
		os.Exit(1)
	}
	initialMode, err := form.ParseMode(*mode)
	if err != nil {
		fmt.Println("invalid mode:", err)
		os.Exit(1)
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "vectorlen")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Dimension: dim,
			Mode:      initialMode,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
