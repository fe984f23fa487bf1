package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/pkg/tree"
)

// Browser styles
var (
	browseTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	browseNormalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	browseDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// newBrowseCmd creates the browse command: an interactive terminal
// explorer for a tree file.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore a tree interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			model := newBrowseModel(root)
			if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}
}

// browseRow is one visible line of the explorer.
type browseRow struct {
	node  tree.Node
	depth int
}

// browseModel is the bubbletea model for tree exploration.
type browseModel struct {
	root     tree.Node
	expanded map[tree.Node]bool
	cursor   int
	offset   int
	height   int
}

func newBrowseModel(root tree.Node) browseModel {
	return browseModel{
		root:     root,
		expanded: map[tree.Node]bool{root: true},
		height:   15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

// rows flattens the tree to the currently visible lines.
func (m browseModel) rows() []browseRow {
	var out []browseRow
	var walk func(n tree.Node, depth int)
	walk = func(n tree.Node, depth int) {
		out = append(out, browseRow{node: n, depth: depth})
		if !m.expanded[n] {
			return
		}
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(m.root, 0)
	return out
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			n := rows[m.cursor].node
			if len(n.Children()) > 0 {
				m.expanded[n] = !m.expanded[n]
			}
		case "right", "l":
			n := rows[m.cursor].node
			if len(n.Children()) > 0 {
				m.expanded[n] = true
			}
		case "left", "h":
			n := rows[m.cursor].node
			if m.expanded[n] {
				m.expanded[n] = false
				break
			}
			// Jump to the parent line.
			if p := n.Parent(); p != nil {
				for i, r := range rows {
					if r.node == p {
						m.cursor = i
						if m.cursor < m.offset {
							m.offset = m.cursor
						}
						break
					}
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(browseTitleStyle.Render(fmt.Sprintf("arbor browse: %s", tree.PathName(m.root))))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("↑/↓ navigate  ⏎ toggle  ←/→ collapse/expand  q quit"))
	b.WriteString("\n\n")

	rows := m.rows()
	end := min(m.offset+m.height, len(rows))
	for i := m.offset; i < end; i++ {
		r := rows[i]

		marker := "  "
		if len(r.node.Children()) > 0 {
			if m.expanded[r.node] {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}

		line := strings.Repeat("  ", r.depth) + marker + r.node.Name()
		if summary := attrSummary(r.node.Attrs()); summary != "" {
			line += "  " + browseDimStyle.Render(summary)
		}

		if i == m.cursor {
			b.WriteString(browseSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(browseNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// attrSummary renders an attribute bag as "k=v k=v" with stable order.
func attrSummary(attrs tree.Attrs) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, attrs[k]))
	}
	return strings.Join(parts, " ")
}
