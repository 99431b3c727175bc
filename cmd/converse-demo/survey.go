package main

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/runger/converse"
	"github.com/runger/converse/styled"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Walk through ask, validation, confirmation, and masked entry",
	Args:  cobra.NoArgs,
	RunE:  runSurvey,
}

// commandWords feeds Tab completion while the favorite command is typed.
var commandWords = []string{
	"docker", "git", "grep", "kubectl", "make", "ssh",
	"build", "commit", "logs", "push", "status", "test",
}

func runSurvey(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	name, err := s.Ask(styled.String("Your name: ").Fg(styled.Cyan), "friend")
	if err != nil {
		return err
	}

	var favorite string
	err = s.WithCompletion(converse.CompleteWords(commandWords...), func() error {
		var aerr error
		favorite, aerr = s.AskUntil(
			styled.String("Favorite command, with an argument: ").Fg(styled.Cyan),
			"",
			validateCommand,
		)
		return aerr
	})
	if err != nil {
		return err
	}

	ch, err := s.AskChar(styled.Join(
		styled.Str("Save answers for "),
		styled.String(name).Bold(),
		styled.Str("? [y/n] "),
	))
	if err != nil {
		return err
	}
	if ch != 'y' && ch != 'Y' {
		return s.ReportLn(converse.SeverityWarning, styled.Str("nothing saved"))
	}

	secret, err := s.AskPassword(styled.String("Passphrase: ").Fg(styled.Cyan), '*')
	if err != nil {
		return err
	}

	summary := styled.Join(
		styled.String("saved ").Fg(styled.Green),
		styled.String(favorite).Bold(),
		styled.Str(fmt.Sprintf(" (passphrase: %d characters)", len(secret))),
	)
	return s.SayLn(summary)
}

// validateCommand accepts a shell-style command line with at least one
// argument and canonicalizes its spacing.
func validateCommand(answer string) (string, error) {
	words, err := shlex.Split(answer)
	if err != nil {
		return "", converse.Reject(styled.Join(
			styled.String("unparseable: ").Fg(styled.Red),
			styled.Str(err.Error()),
		))
	}
	if len(words) < 2 {
		return "", converse.Reject(styled.Str("give me a command plus at least one argument"))
	}
	return strings.Join(words, " "), nil
}
