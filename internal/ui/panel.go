// Package ui provides the MentorMirror control panel: a terminal front
// end that launches the scrape and session workflows as subprocesses
// and streams their output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeMenu mode = iota
	modeScrapeInput
	modeSessionInput
	modeRunning
)

// modelChoice pairs a display name with service/model flags, mirroring
// the pipeline's --service/--model options.
type modelChoice struct {
	Display string
	Service string
	Model   string
}

var modelChoices = []modelChoice{
	{"OpenAI: GPT-4o Mini", "openai", "gpt-4o-mini"},
	{"OpenAI: GPT-4o", "openai", "gpt-4o"},
	{"OpenAI: GPT-4 Turbo", "openai", "gpt-4-turbo"},
	{"Google: Gemini 2.0 Flash", "google", "gemini-2.0-flash"},
	{"Google: Gemini 2.5 Pro", "google", "gemini-2.5-pro"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var menuItems = []string{
	"Scrape mentor content",
	"Run mentor session",
	"Quit",
}

// Model is the control panel root model.
type Model struct {
	mode     mode
	cursor   int
	modelIdx int

	urlInput     textinput.Model
	mentorInput  textinput.Model
	contentInput textinput.Model
	focusIdx     int

	console  viewport.Model
	lines    []string
	spin     spinner.Model
	run      *runner
	lastErr  error
	finished bool

	width  int
	height int
}

// New creates the control panel model.
func New() Model {
	url := textinput.New()
	url.Placeholder = "https://example.com/blog"
	url.CharLimit = 512

	mentor := textinput.New()
	mentor.Placeholder = "Mentor name (blank to infer)"
	mentor.CharLimit = 128

	content := textinput.New()
	content.Placeholder = "path/to/content.txt"
	content.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		urlInput:     url,
		mentorInput:  mentor,
		contentInput: content,
		console:      viewport.New(80, 16),
		spin:         sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.console.Width = msg.Width - 4
		m.console.Height = msg.Height - 10
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.run.kill()
			return m, tea.Quit
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeScrapeInput:
			return m.updateScrapeInput(msg)
		case modeSessionInput:
			return m.updateSessionInput(msg)
		case modeRunning:
			if msg.Type == tea.KeyEsc && m.finished {
				m.mode = modeMenu
				return m, nil
			}
		}
		return m, nil

	case lineMsg:
		m.lines = append(m.lines, string(msg))
		m.console.SetContent(strings.Join(m.lines, "\n"))
		m.console.GotoBottom()
		return m, m.run.next()

	case doneMsg:
		m.finished = true
		m.lastErr = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		switch m.cursor {
		case 0:
			m.mode = modeScrapeInput
			m.urlInput.Focus()
			return m, textinput.Blink
		case 1:
			m.mode = modeSessionInput
			m.focusIdx = 0
			m.mentorInput.Focus()
			m.contentInput.Blur()
			return m, textinput.Blink
		case 2:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateScrapeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeMenu
		m.urlInput.Blur()
		return m, nil
	case tea.KeyEnter:
		url := strings.TrimSpace(m.urlInput.Value())
		if url == "" {
			return m, nil
		}
		return m.launch([]string{"scrape", url})
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m Model) updateSessionInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeMenu
		m.mentorInput.Blur()
		m.contentInput.Blur()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.focusIdx = (m.focusIdx + 1) % 3
		m.syncSessionFocus()
		return m, textinput.Blink
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusIdx = (m.focusIdx + 2) % 3
		m.syncSessionFocus()
		return m, textinput.Blink
	case tea.KeyLeft, tea.KeyRight:
		if m.focusIdx == 2 {
			if msg.Type == tea.KeyRight {
				m.modelIdx = (m.modelIdx + 1) % len(modelChoices)
			} else {
				m.modelIdx = (m.modelIdx + len(modelChoices) - 1) % len(modelChoices)
			}
			return m, nil
		}
	case tea.KeyEnter:
		content := strings.TrimSpace(m.contentInput.Value())
		if content == "" {
			return m, nil
		}
		choice := modelChoices[m.modelIdx]
		args := []string{"session",
			"--content", content,
			"--service", choice.Service,
			"--model", choice.Model,
		}
		if mentorName := strings.TrimSpace(m.mentorInput.Value()); mentorName != "" {
			args = append(args, "--mentor", mentorName)
		}
		return m.launch(args)
	}

	var cmd tea.Cmd
	switch m.focusIdx {
	case 0:
		m.mentorInput, cmd = m.mentorInput.Update(msg)
	case 1:
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncSessionFocus() {
	m.mentorInput.Blur()
	m.contentInput.Blur()
	switch m.focusIdx {
	case 0:
		m.mentorInput.Focus()
	case 1:
		m.contentInput.Focus()
	}
}

// launch starts this binary with args as a subprocess and switches to
// the console view. Only one process runs at a time.
func (m Model) launch(args []string) (tea.Model, tea.Cmd) {
	bin, err := os.Executable()
	if err != nil {
		bin = os.Args[0]
	}

	run, err := start(bin, args)
	if err != nil {
		m.lines = append(m.lines, errStyle.Render("failed to start: "+err.Error()))
		m.console.SetContent(strings.Join(m.lines, "\n"))
		return m, nil
	}

	m.run = run
	m.mode = modeRunning
	m.finished = false
	m.lastErr = nil
	m.lines = []string{dimStyle.Render("$ mentormirror " + strings.Join(args, " "))}
	m.console.SetContent(strings.Join(m.lines, "\n"))

	return m, tea.Batch(m.spin.Tick, run.next())
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MentorMirror Control Panel"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeMenu:
		for i, item := range menuItems {
			cursor := "  "
			line := item
			if i == m.cursor {
				cursor = "> "
				line = activeStyle.Render(item)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("up/down to move, enter to select, q to quit"))

	case modeScrapeInput:
		b.WriteString("URL to scrape:\n")
		b.WriteString(m.urlInput.View() + "\n\n")
		b.WriteString(dimStyle.Render("enter to start, esc to go back"))

	case modeSessionInput:
		b.WriteString("Mentor name:\n")
		b.WriteString(m.mentorInput.View() + "\n")
		b.WriteString("Content file:\n")
		b.WriteString(m.contentInput.View() + "\n")
		choice := modelChoices[m.modelIdx]
		modelLine := fmt.Sprintf("Model: < %s >", choice.Display)
		if m.focusIdx == 2 {
			modelLine = activeStyle.Render(modelLine)
		}
		b.WriteString(modelLine + "\n\n")
		b.WriteString(dimStyle.Render("tab to move, left/right to pick model, enter to start, esc to go back"))

	case modeRunning:
		status := m.spin.View() + " running..."
		if m.finished {
			if m.lastErr != nil {
				status = errStyle.Render("process failed: " + m.lastErr.Error())
			} else {
				status = okStyle.Render("process finished")
			}
			status += dimStyle.Render("  (esc to go back)")
		}
		b.WriteString(status + "\n")
		b.WriteString(borderStyle.Render(m.console.View()))
	}

	return b.String()
}
