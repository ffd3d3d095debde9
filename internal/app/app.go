package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lahari/mcqgen/internal/mcq"
	"github.com/lahari/mcqgen/internal/quiz"
	"github.com/lahari/mcqgen/internal/ui/components"
	"github.com/lahari/mcqgen/internal/ui/theme"
)

// Options carries the dependencies for an interactive quiz run.
type Options struct {
	Generator    *mcq.Generator
	Text         string
	NumQuestions int
}

type phase int

const (
	phaseGenerating phase = iota
	phaseQuestion
	phaseFeedback
	phaseResults
	phaseError
)

// questionsReadyMsg is sent when question generation completes.
type questionsReadyMsg struct {
	Questions mcq.QuestionSet
}

// genFailedMsg is sent when question generation fails.
type genFailedMsg struct {
	Err error
}

// Model is the root Bubble Tea model for the quiz flow.
type Model struct {
	opts    Options
	phase   phase
	spin    spinner.Model
	session *quiz.Session
	current int
	choice  components.Choice
	result  quiz.Result
	err     error
	width   int
}

func newModel(opts Options) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Model{
		opts: opts,
		spin: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.generate())
}

// generate runs question generation off the UI loop.
func (m Model) generate() tea.Cmd {
	return func() tea.Msg {
		questions, err := m.opts.Generator.Generate(context.Background(), m.opts.Text, m.opts.NumQuestions)
		if err != nil {
			return genFailedMsg{Err: err}
		}
		return questionsReadyMsg{Questions: questions}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case questionsReadyMsg:
		m.session = quiz.NewSession(msg.Questions)
		m.phase = phaseQuestion
		m.choice = m.choiceFor(0)
		return m, nil

	case genFailedMsg:
		m.err = msg.Err
		m.phase = phaseError
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuestion:
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			m.session.SetAnswer(m.current, m.choice.Chosen())
			m.phase = phaseFeedback
		}
		return m, cmd

	case phaseFeedback:
		m.current++
		if m.current >= len(m.session.Questions) {
			m.result = m.session.Grade()
			m.phase = phaseResults
		} else {
			m.choice = m.choiceFor(m.current)
			m.phase = phaseQuestion
		}
		return m, nil

	case phaseResults, phaseError:
		switch msg.String() {
		case "q", "enter", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) choiceFor(i int) components.Choice {
	q := m.session.Questions[i]
	question := fmt.Sprintf("%d/%d  %s", i+1, len(m.session.Questions), q.Prompt)
	return components.NewChoice(question, q.OptionKeys(), q.Options, q.MultiCorrect())
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.content())
	return v
}

// content renders the current phase as plain text.
func (m Model) content() string {
	switch m.phase {
	case phaseGenerating:
		return fmt.Sprintf("\n %s Generating questions...\n", m.spin.View())
	case phaseQuestion:
		return "\n" + m.choice.View()
	case phaseFeedback:
		return "\n" + m.feedbackView()
	case phaseResults:
		return "\n" + m.resultsView()
	case phaseError:
		return "\n" + theme.Incorrect.Render("Error: "+m.err.Error()) + "\n\n" + theme.Hint.Render("press q to quit") + "\n"
	}
	return ""
}

func (m Model) feedbackView() string {
	q := m.session.Questions[m.current]
	correct := mcq.ResolveCorrect(q)
	chosen := m.session.Answer(m.current)

	var b strings.Builder
	b.WriteString(m.choice.View())
	b.WriteString("\n")

	if keySetsMatch(chosen, correct) {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Incorrect."))
		b.WriteString(" ")
		b.WriteString(theme.Body.Render("Answer: " + strings.Join(correct, ", ")))
	}
	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(q.Explanation))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press any key to continue"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) resultsView() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Score: %d/%d", m.result.Score, m.result.Total)))
	b.WriteString("\n\n")

	for _, qr := range m.result.Questions {
		mark := theme.Correct.Render("✓")
		if !qr.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		prompt := m.session.Questions[qr.Index].Prompt
		b.WriteString(fmt.Sprintf(" %s %d. %s\n", mark, qr.Index+1, prompt))
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("press q to quit"))
	b.WriteString("\n")
	return b.String()
}

func keySetsMatch(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, k := range a {
		set[k] = true
	}
	for _, k := range b {
		if !set[k] {
			return false
		}
	}
	return true
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
