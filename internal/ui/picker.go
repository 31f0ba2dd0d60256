// Package ui implements the interactive replacement picker. For every
// suggestion with at least one candidate the user chooses a replacement,
// types a custom one, or moves on; approved edits accumulate into a
// suggest.UserPicked that is written to disk afterwards.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"prosecheck/internal/suggest"
)

const helpText = `y      - apply the highlighted replacement
enter  - apply the highlighted replacement (or the typed one)
n      - do not apply any replacement for this suggestion
d      - skip this suggestion and the rest of the current file
q, esc - quit; keep everything picked so far, write nothing new
j      - go back to the previous suggestion (not currently supported)
e      - jump to the custom replacement slot and edit it
up     - move the highlight up, wrapping around
down   - move the highlight down, wrapping around
?      - show this help

press any key to continue`

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	tickStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	otherStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	customStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	contextStyle   = lipgloss.NewStyle().Faint(true)
	caretStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type fileSuggestions struct {
	path string
	sugs []suggest.Suggestion
}

// Model is the picker state machine. One (file, suggestion) pair is active
// at a time; the highlight cycles over the suggestion's candidates plus one
// trailing custom-entry slot.
type Model struct {
	files    []fileSuggestions
	fileIdx  int
	sugIdx   int
	pickIdx  int
	input    textinput.Model
	showHelp bool
	status   string
	width    int
	picked   *suggest.UserPicked
	done     bool
}

// New builds a picker over the suggestion set. Files are visited in
// collection order, suggestions in their per-file order; suggestions
// without candidates are skipped without prompting.
func New(set *suggest.SuggestionSet) *Model {
	input := textinput.New()
	input.Placeholder = "..."
	input.Prompt = ""
	input.Focus()

	m := &Model{
		input:  input,
		width:  80,
		picked: suggest.NewUserPicked(),
	}
	for _, path := range set.Paths() {
		m.files = append(m.files, fileSuggestions{path: path, sugs: set.For(path)})
	}
	m.seek()
	return m
}

// Picked returns everything approved before the session ended.
func (m *Model) Picked() *suggest.UserPicked {
	return m.picked
}

// Done reports whether the session has ended (completed or quit).
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) current() (string, suggest.Suggestion) {
	f := m.files[m.fileIdx]
	return f.path, f.sugs[m.sugIdx]
}

// nItems is the number of pickable slots: all candidates plus the
// custom-entry slot at the end.
func (m *Model) nItems() int {
	_, sug := m.current()
	return len(sug.Candidates) + 1
}

// onCustom reports whether the highlight sits on the custom-entry slot.
func (m *Model) onCustom() bool {
	return m.pickIdx == m.nItems()-1
}

// seek moves the cursor to the next suggestion that has candidates,
// advancing across files; it ends the session when none remain.
func (m *Model) seek() {
	for m.fileIdx < len(m.files) {
		sugs := m.files[m.fileIdx].sugs
		for m.sugIdx < len(sugs) && len(sugs[m.sugIdx].Candidates) == 0 {
			m.sugIdx++
		}
		if m.sugIdx < len(sugs) {
			m.pickIdx = 0
			m.input.SetValue("")
			return
		}
		m.fileIdx++
		m.sugIdx = 0
	}
	m.done = true
}

func (m *Model) advance() tea.Cmd {
	m.status = ""
	m.sugIdx++
	m.seek()
	if m.done {
		return tea.Quit
	}
	return nil
}

func (m *Model) skipFile() tea.Cmd {
	m.status = ""
	m.fileIdx++
	m.sugIdx = 0
	m.seek()
	if m.done {
		return tea.Quit
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	// nothing is recorded for the in-progress suggestion
	m.done = true
	return tea.Quit
}

func (m *Model) confirm() tea.Cmd {
	path, sug := m.current()
	if m.onCustom() {
		// the typed replacement is used verbatim, even when empty
		m.picked.Add(path, suggest.FromCustom(sug, m.input.Value()))
		return m.advance()
	}
	bandaid, err := suggest.FromCandidate(sug, m.pickIdx)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.picked.Add(path, bandaid)
	return m.advance()
}

func (m *Model) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// a resize is only a redraw request, never input
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
		if m.showHelp {
			// any key returns to the same suggestion
			m.showHelp = false
			return m, nil
		}
		if m.onCustom() {
			return m.updateCustom(msg)
		}
		return m.updateSelecting(msg)
	}
	return m, nil
}

func (m *Model) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.pickIdx = (m.pickIdx + m.nItems() - 1) % m.nItems()
	case "down":
		m.pickIdx = (m.pickIdx + 1) % m.nItems()
	case "enter", "y":
		return m, m.confirm()
	case "n":
		return m, m.advance()
	case "d":
		return m, m.skipFile()
	case "q", "esc", "ctrl+c":
		return m, m.quit()
	case "e":
		m.pickIdx = m.nItems() - 1
	case "j":
		// the suggestion stream is forward-only; surfaced, not silent
		m.status = "going back is not supported yet"
	case "?":
		m.showHelp = true
	}
	return m, nil
}

func (m *Model) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.confirm()
	case "esc", "ctrl+c":
		return m, m.quit()
	case "up":
		m.pickIdx = (m.pickIdx + m.nItems() - 1) % m.nItems()
		return m, nil
	case "down":
		m.pickIdx = (m.pickIdx + 1) % m.nItems()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.done {
		return ""
	}
	if m.showHelp {
		return helpText + "\n"
	}

	path, sug := m.current()
	total := len(m.files[m.fileIdx].sugs)

	var b strings.Builder
	b.WriteString(headerStyle.Render(truncate(path, m.width-1)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %s\n", sug.Origin, sug.Message))

	if sug.Context != "" {
		gutter := fmt.Sprintf("%4d", sug.Span.Line)
		b.WriteString(fmt.Sprintf("%s | %s\n", gutter, contextStyle.Render(truncate(sug.Context, m.width-8))))
		start, end := sug.Span.Cols.Start, sug.Span.Cols.End
		if start > len(sug.Context) {
			start = len(sug.Context)
		}
		if end > len(sug.Context) {
			end = len(sug.Context)
		}
		lead := runewidth.StringWidth(sug.Context[:start])
		width := runewidth.StringWidth(sug.Context[start:end])
		if width == 0 {
			width = 1
		}
		b.WriteString(fmt.Sprintf("     | %s%s\n",
			strings.Repeat(" ", lead),
			caretStyle.Render(strings.Repeat("^", width))))
	}

	b.WriteString(questionStyle.Render(fmt.Sprintf(
		"(%d/%d) Apply this suggestion [y,n,q,d,j,e,?]?", m.sugIdx+1, total)))
	b.WriteString("\n")

	for idx, candidate := range sug.Candidates {
		if idx == m.pickIdx {
			b.WriteString(fmt.Sprintf("  %s %s\n", tickStyle.Render("»"), highlightStyle.Render(candidate)))
		} else {
			b.WriteString(fmt.Sprintf("    %s\n", otherStyle.Render(candidate)))
		}
	}
	if m.onCustom() {
		b.WriteString(fmt.Sprintf("  %s %s\n", tickStyle.Render("»"), customStyle.Render(m.input.View())))
	} else {
		entry := m.input.Value()
		if entry == "" {
			entry = "..."
		}
		b.WriteString(fmt.Sprintf("    %s\n", customStyle.Render(entry)))
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Run drives the picker on the real terminal. Raw mode is acquired and
// restored by the bubbletea program on every exit path, including panics.
func Run(set *suggest.SuggestionSet) (*suggest.UserPicked, error) {
	m := New(set)
	if m.Done() {
		return m.Picked(), nil
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("interactive session failed: %w", err)
	}
	return final.(*Model).Picked(), nil
}
