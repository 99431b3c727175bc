package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runger/converse"
	"github.com/runger/converse/styled"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose from a menu with prefix matching",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

var pickFile string

func init() {
	pickCmd.Flags().StringVar(&pickFile, "file", "", "YAML file with menu items (name + summary per entry)")
}

// pickItem is one selectable entry of the pick menu.
type pickItem struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
}

// builtinItems is used when --file is not given.
var builtinItems = []pickItem{
	{Name: "espresso", Summary: "short and strong"},
	{Name: "filter", Summary: "slow morning pot"},
	{Name: "flat white", Summary: "espresso with silky milk"},
	{Name: "tea", Summary: "not coffee at all"},
}

func runPick(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	items := builtinItems
	if pickFile != "" {
		items, err = loadItems(pickFile)
		if err != nil {
			return err
		}
	}

	menu := converse.NewMenu(items, func(it pickItem) styled.Text {
		return styled.String(it.Name).Bold().
			Append(styled.Str("  " + it.Summary))
	}).WithBanner(styled.String("On the menu today").Fg(styled.Cyan))

	item, err := converse.AskWithMenuRepeatedly(s,
		menu,
		styled.Str("your pick: "),
		styled.String("no such item, a number or a name prefix works").Fg(styled.Red),
	)
	if err != nil {
		return err
	}

	return s.SayLn(styled.Join(
		styled.String("enjoy your ").Fg(styled.Green),
		styled.String(item.Name).Bold(),
	))
}

// loadItems reads menu items from a YAML list.
func loadItems(path string) ([]pickItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	var items []pickItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items in %s", path)
	}
	return items, nil
}
