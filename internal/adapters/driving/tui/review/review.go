// Package review provides the apply/skip screen shown before a note is patched.
package review

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/songnote/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/songnote/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/songnote/internal/core/domain"
	"github.com/custodia-labs/songnote/internal/normalisers/lyrics"
)

// Decision is the user's answer on the review screen.
type Decision int

const (
	// DecisionPending means no key has been pressed yet.
	DecisionPending Decision = iota
	// DecisionApply writes the patched note.
	DecisionApply
	// DecisionSkip leaves the note untouched.
	DecisionSkip
	// DecisionQuit aborts the run.
	DecisionQuit
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case DecisionApply:
		return "apply"
	case DecisionSkip:
		return "skip"
	case DecisionQuit:
		return "quit"
	default:
		return "pending"
	}
}

const (
	defaultWidth  = 100
	defaultHeight = 32
	// helpHeight is the room left under the viewport for the key hints.
	helpHeight = 2
)

// ErrUnexpectedModel is returned when the program exits with a foreign model.
var ErrUnexpectedModel = errors.New("review: unexpected model type")

// Model is the bubbletea model for the review screen.
type Model struct {
	viewport viewport.Model
	keymap   *keymap.KeyMap
	styles   *styles.Styles
	result   *domain.PatchResult
	decision Decision
}

// New creates a review model for a computed patch.
func New(result *domain.PatchResult, s *styles.Styles) Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	vp := viewport.New(defaultWidth, defaultHeight)
	vp.Style = s.Viewport
	vp.SetContent(Render(result, s))

	return Model{
		viewport: vp,
		keymap:   keymap.DefaultKeyMap(),
		styles:   s,
		result:   result,
	}
}

// Decision returns the user's choice.
func (m Model) Decision() Decision {
	return m.decision
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-helpHeight, 1)
		return m, nil

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, m.keymap.Quit):
			m.decision = DecisionQuit
			return m, tea.Quit
		case keymap.Matches(key, m.keymap.Skip):
			m.decision = DecisionSkip
			return m, tea.Quit
		case keymap.Matches(key, m.keymap.Apply):
			m.decision = DecisionApply
			return m, tea.Quit
		default:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return m.viewport.View() + "\n" + m.helpView()
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keymap.ShortHelp()))
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return m.styles.Help.Render("  " + strings.Join(parts, " • "))
}

// Render builds the review text for a patch result.
func Render(result *domain.PatchResult, s *styles.Styles) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if result == nil {
		return s.Muted.Render("Nothing to review.")
	}

	var b strings.Builder

	title := "songnote review"
	if result.Path != "" {
		title += ": " + filepath.Base(result.Path)
	}
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")

	st := result.Stats
	b.WriteString(s.Muted.Render(fmt.Sprintf(
		"preset %s • %d lines in • %d kept • %d headers • %d blank • %d emptied",
		result.Preset, st.Input, st.Kept, st.Headers, st.Blank, st.Emptied)))
	b.WriteString("\n\n")

	b.WriteString(s.Subtitle.Render("Lines"))
	b.WriteString("\n")
	for _, line := range lyrics.Lines(result.SourceLyrics, result.Preset) {
		switch {
		case line.Kind == domain.LineHeader:
			b.WriteString(s.Removed.Render("- " + strings.TrimSpace(line.Original) + "  (header)"))
		case line.Kind == domain.LineBlank:
			continue
		case line.Changed():
			b.WriteString(s.Normal.Render(strings.TrimSpace(line.Original) + " → " + line.Output))
		default:
			b.WriteString(s.Muted.Render("  " + line.Output))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Subtitle.Render("Target section"))
	b.WriteString("\n")
	if !result.Changed {
		b.WriteString(s.Muted.Render("Note already up to date."))
		b.WriteString("\n")
		return b.String()
	}

	for _, line := range splitNonEmpty(result.PreviousTarget) {
		b.WriteString(s.Removed.Render("- " + line))
		b.WriteString("\n")
	}
	for _, line := range strings.Split(result.Lyrics, "\n") {
		b.WriteString(s.Added.Render("+ " + line))
		b.WriteString("\n")
	}

	return b.String()
}

func splitNonEmpty(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Run shows the review screen and blocks until the user decides.
func Run(ctx context.Context, result *domain.PatchResult) (Decision, error) {
	p := tea.NewProgram(
		New(result, nil),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return DecisionQuit, fmt.Errorf("run review: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return DecisionQuit, ErrUnexpectedModel
	}
	return m.Decision(), nil
}
