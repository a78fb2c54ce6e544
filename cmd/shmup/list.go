package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered game mode. The one marked * is played when no mode is given.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "ID", "TITLE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, m := range modes {
		mark := ""
		if m.ID == defaultGame {
			mark = "*"
		}
		t.Row(mark, m.ID, m.Title)
	}

	fmt.Println(t)
	fmt.Println("Run 'shmup play <id>' to play a mode.")
}
