package main

import (
	"github.com/spf13/cobra"

	"github.com/runger/converse/styled"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Show text attributes and colors",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

func runStyles(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	if err := s.SayLn(styled.String("attributes").Bold()); err != nil {
		return err
	}
	attrs := styled.Join(
		styled.String("bold").Bold(),
		styled.Str("  "),
		styled.String("underline").Underline(),
		styled.Str("  "),
		styled.String("swapped").Swap(),
	)
	if err := s.SayLn(attrs); err != nil {
		return err
	}

	if err := s.SayLn(styled.String("named colors").Bold()); err != nil {
		return err
	}
	named := []struct {
		name  string
		color styled.Color
	}{
		{"black", styled.Black},
		{"red", styled.Red},
		{"green", styled.Green},
		{"yellow", styled.Yellow},
		{"blue", styled.Blue},
		{"magenta", styled.Magenta},
		{"cyan", styled.Cyan},
		{"white", styled.White},
	}
	fg, bg := styled.Text{}, styled.Text{}
	for _, c := range named {
		fg = fg.Append(styled.String(c.name).Fg(c.color)).Append(styled.Str(" "))
		bg = bg.Append(styled.String(c.name).Bg(c.color)).Append(styled.Str(" "))
	}
	if err := s.SayLn(fg); err != nil {
		return err
	}
	if err := s.SayLn(bg); err != nil {
		return err
	}

	if err := s.SayLn(styled.String("rgb").Bold()); err != nil {
		return err
	}
	gradient := styled.Text{}
	for i := 0; i < 16; i++ {
		step := uint8(i * 16)
		gradient = gradient.Append(styled.String("█").Fg(styled.RGB(step, 128, 255-step)))
	}
	if err := s.SayLn(gradient); err != nil {
		return err
	}

	// Attributes nest per fragment; the unstyled tail stays unstyled.
	mixed := styled.
		String("styled head").Fg(styled.Cyan).Bold().
		Append(styled.Str(" then ")).
		Append(styled.String("another voice").Fg(styled.Magenta).Underline())
	return s.SayLn(mixed)
}
