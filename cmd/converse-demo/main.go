// Package main is a small tour of the converse toolkit: stylized output, the
// ask layer, and the menu engine, on any of the line readers.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runger/converse"
	"github.com/runger/converse/styled"
	"github.com/runger/converse/teareader"
)

// Exit codes.
//
//	0 = conversation completed
//	1 = end of input (Ctrl-D, closed pipe)
//	2 = usage or setup failure
const (
	exitSuccess = 0
	exitEOF     = 1
	exitUsage   = 2
)

var (
	flagMode   string
	flagReader string
)

var rootCmd = &cobra.Command{
	Use:   "converse-demo",
	Short: "interactive tour of the converse toolkit",
	Long: `converse-demo exercises the converse prompt toolkit end to end:
  styles  - stylized text and color rendering
  survey  - ask, validation, confirmation, and masked entry
  pick    - the menu engine with prefix matching`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, io.EOF) {
			return exitEOF
		}
		fmt.Fprintf(os.Stderr, "converse-demo: %v\n", err)
		return exitUsage
	}
	return exitSuccess
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "auto", "render mode: plain, ansi, or auto")
	rootCmd.PersistentFlags().StringVar(&flagReader, "reader", "term", "line reader: term, tea, or plain")

	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(surveyCmd)
	rootCmd.AddCommand(pickCmd)
}

// newSession builds the Session the subcommands talk through, honoring the
// --mode and --reader flags.
func newSession() (*converse.Session, error) {
	var opts []converse.Option

	switch flagMode {
	case "auto":
	case "plain":
		opts = append(opts, converse.WithMode(styled.Plain))
	case "ansi":
		opts = append(opts, converse.WithMode(styled.ANSI))
	default:
		return nil, fmt.Errorf("unknown --mode %q (want plain, ansi, or auto)", flagMode)
	}

	switch flagReader {
	case "term":
		opts = append(opts, converse.WithReader(converse.NewTerminalReader(os.Stdin, os.Stdout)))
	case "tea":
		opts = append(opts, converse.WithReader(teareader.New()))
	case "plain":
		opts = append(opts, converse.WithReader(converse.NewPlainReader(os.Stdin, os.Stdout)))
	default:
		return nil, fmt.Errorf("unknown --reader %q (want term, tea, or plain)", flagReader)
	}

	return converse.New(opts...), nil
}
