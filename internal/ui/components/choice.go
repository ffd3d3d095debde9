package components

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/lahari/mcqgen/internal/ui/theme"
)

// Choice is a keyed option selector. In multi mode space toggles options
// and enter submits the checked set; in single mode enter submits the
// highlighted option directly.
type Choice struct {
	Question  string
	Keys      []string
	Options   map[string]string
	Multi     bool
	Cursor    int
	Checked   map[string]bool
	Submitted bool
}

// NewChoice creates a selector over the given option keys, in key order.
func NewChoice(question string, keys []string, options map[string]string, multi bool) Choice {
	return Choice{
		Question: question,
		Keys:     keys,
		Options:  options,
		Multi:    multi,
		Checked:  make(map[string]bool),
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation, toggling, and submission.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Keys)-1 {
			c.Cursor++
		}
	case " ", "space":
		if c.Multi {
			key := c.Keys[c.Cursor]
			c.Checked[key] = !c.Checked[key]
		}
	case "enter":
		if !c.Multi {
			c.Checked = map[string]bool{c.Keys[c.Cursor]: true}
		}
		if len(c.Chosen()) > 0 {
			c.Submitted = true
		}
	}

	return c, nil
}

// View renders the question and its options.
func (c Choice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(c.Question))
	b.WriteString("\n\n")

	for i, key := range c.Keys {
		prefix := "  "
		if i == c.Cursor && !c.Submitted {
			prefix = "▸ "
		}

		marker := ""
		if c.Multi {
			marker = "[ ] "
			if c.Checked[key] {
				marker = "[x] "
			}
		}

		line := fmt.Sprintf("%s%s%s)  %s", prefix, marker, key, c.Options[key])

		switch {
		case c.Checked[key]:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Cursor && !c.Submitted:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	if c.Multi && !c.Submitted {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("space to toggle, enter to submit"))
		b.WriteString("\n")
	}

	return b.String()
}

// Chosen returns the checked option keys in sorted order.
func (c Choice) Chosen() []string {
	var keys []string
	for key, on := range c.Checked {
		if on {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
