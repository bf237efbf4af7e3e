// Command layoutview shows how a list of scalar field types is laid out:
// offsets, padding, alignment and a byte map.
//
//	layoutview s32 f64 s8
//	layoutview -plain u8 u64
//	layoutview            (interactive)
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wippyai/tuple/internal/scalar"
	"golang.org/x/term"
)

func main() {
	plain := flag.Bool("plain", false, "Print a text table instead of the interactive view")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: layoutview [-plain] [type ...]")
		fmt.Fprintf(os.Stderr, "Types: %s\n", strings.Join(scalar.Names(), " "))
		flag.PrintDefaults()
	}
	flag.Parse()

	names := flag.Args()
	tty := term.IsTerminal(int(os.Stdout.Fd()))

	if *plain || !tty {
		if len(names) == 0 {
			flag.Usage()
			os.Exit(2)
		}
		r, err := newReport(names)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := r.writePlain(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runInteractive(names); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInteractive(names []string) error {
	p := tea.NewProgram(newModel(names), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
