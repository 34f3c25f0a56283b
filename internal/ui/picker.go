package ui

import (
	"errors"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/gorg/internal/match"
	"github.com/raphi011/gorg/internal/ui/styles"
)

// ErrCancelled is returned by Pick when the user leaves the selector
// without accepting a candidate.
var ErrCancelled = errors.New("selection cancelled")

const (
	queryPrompt = ">>> "

	// markerWidth is the number of cells the selection marker occupies
	// in front of every candidate row.
	markerWidth = 4

	defaultMaxItems  = 10
	fallbackRowWidth = 80
)

// pickerModel is the state of one interactive selection session. Update
// and View are pure: a transition consumes a message and returns the new
// model, rendering projects the current state without mutating it.
type pickerModel struct {
	input      textinput.Model
	candidates []string
	ranked     []match.Result
	highlight  int
	maxItems   int
	width      int

	accepted  bool
	cancelled bool
	choice    int // original candidate index, -1 until accepted
}

func newPicker(candidates []string, initialQuery string, maxItems int) pickerModel {
	ti := textinput.New()
	ti.Prompt = queryPrompt
	ti.SetValue(initialQuery)
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)

	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}

	return pickerModel{
		input:      ti,
		candidates: candidates,
		ranked:     match.Match(initialQuery, candidates, match.Fuzzy),
		maxItems:   maxItems,
		choice:     -1,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if len(m.ranked) == 0 {
				return m, nil
			}
			m.choice = m.ranked[m.highlight].Index
			m.accepted = true
			return m, tea.Quit
		case "esc", "ctrl+c", "ctrl+d":
			// ctrl+d must not reach the text input, where it would
			// delete forward instead of cancelling.
			m.cancelled = true
			return m, tea.Quit
		case "down", "ctrl+n":
			if m.highlight < m.visibleItems()-1 {
				m.highlight++
			}
			return m, nil
		case "up", "ctrl+p":
			if m.highlight > 0 {
				m.highlight--
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	// Everything else is editing. The text input owns cursor movement
	// and deletion; any change to the query re-ranks from scratch.
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != prev {
		m.ranked = match.Match(q, m.candidates, match.Fuzzy)
		m.highlight = 0
	}
	return m, cmd
}

func (m pickerModel) View() tea.View {
	return tea.NewView(m.render())
}

// render projects the session state into the redraw string. It is
// idempotent: rendering twice changes nothing.
func (m pickerModel) render() string {
	if m.accepted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	for i := 0; i < m.visibleItems(); i++ {
		if i == m.highlight {
			b.WriteString("  * ")
		} else {
			b.WriteString("    ")
		}
		b.WriteString(m.renderItem(m.ranked[i], i == m.highlight))
		b.WriteString("\n")
	}

	if len(m.ranked) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching projects"))
		b.WriteString("\n")
	}

	return b.String()
}

// visibleItems is the number of candidate rows currently rendered,
// which is also the bound for the highlight index.
func (m pickerModel) visibleItems() int {
	return min(len(m.ranked), m.maxItems)
}

// renderItem renders one candidate with its matched runes emphasized,
// trimmed to the terminal width. MatchedIndexes are byte offsets, so the
// lookup key is the range offset, not the rune count.
func (m pickerModel) renderItem(res match.Result, selected bool) string {
	matched := make(map[int]bool, len(res.MatchedIndexes))
	for _, off := range res.MatchedIndexes {
		matched[off] = true
	}

	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}

	budget := m.itemWidth()
	var b strings.Builder
	n := 0
	for off, r := range res.Str {
		if n == budget {
			break
		}
		n++
		if matched[off] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// itemWidth is how many runes of a candidate fit beside the marker.
func (m pickerModel) itemWidth() int {
	w := m.width
	if w == 0 {
		// No size report yet, assume a standard terminal.
		w = fallbackRowWidth
	}
	if w-markerWidth < 10 {
		return 10
	}
	return w - markerWidth
}

// Pick runs an interactive fuzzy selection over candidates and returns
// the accepted candidate's index into the original slice. The session
// renders to stderr so stdout stays clean for the selected value
// (e.g. cd $(gorg find -f) works correctly). Returns ErrCancelled when
// the user aborts with esc, ctrl+c or ctrl+d.
func Pick(candidates []string, initialQuery string, maxItems int) (int, error) {
	model := newPicker(candidates, initialQuery, maxItems)

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m := finalModel.(pickerModel)
	if !m.accepted || m.choice < 0 || m.choice >= len(candidates) {
		return 0, ErrCancelled
	}
	return m.choice, nil
}
