package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ListPrompter prints the whole catalog as a table. It asks nothing.
type ListPrompter struct {
	args Args
}

func NewListPrompter(args Args) *ListPrompter {
	return &ListPrompter{args: args}
}

func (p *ListPrompter) Prompt(ctx context.Context) error {
	catalog, err := p.args.Catalog.Catalog(ctx, false)
	if err != nil {
		return err
	}

	t := p.args.T
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 1 {
				return style.Foreground(lipgloss.Color("4"))
			}
			return style
		}).
		Headers(
			t.GetMessage("list.header_emoji", 0, nil),
			t.GetMessage("list.header_code", 0, nil),
			t.GetMessage("list.header_description", 0, nil),
		)

	for _, e := range catalog {
		tbl.Row(e.Emoji, e.Code, e.Description)
	}

	_, _ = fmt.Fprintln(p.args.Out, tbl.Render())
	_, _ = fmt.Fprintln(p.args.Out, t.GetMessage("list.count", len(catalog), map[string]interface{}{
		"Count": len(catalog),
	}))
	return nil
}
