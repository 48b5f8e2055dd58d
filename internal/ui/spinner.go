package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue500))

// Spinner manages a terminal spinner for long-running stages using Bubble
// Tea. One instance belongs to one run and is carried in the run context;
// Pause/Resume let an interrupt handler clear the spinner before prompting
// and bring it back afterwards.
type Spinner struct {
	mu        sync.Mutex
	message   string
	program   *tea.Program
	isRunning bool
	paused    bool
	isTTY     bool
	quitCh    chan struct{}
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

type msgUpdate string
type msgQuit struct{}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgUpdate:
		m.message = string(msg)
		return m, nil
	case msgQuit:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), DimStyle.Render(m.message))
}

// NewSpinner creates a new spinner instance
func NewSpinner() *Spinner {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	return &Spinner{
		isTTY:  isTTY,
		quitCh: make(chan struct{}),
	}
}

// Start begins the spinner with the given message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.startLocked()
}

// Update changes the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if s.program != nil {
		s.program.Send(msgUpdate(message))
	} else if !s.isTTY {
		fmt.Fprintf(os.Stderr, "%s\n", DimStyle.Render(message))
	}
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.paused = false
}

// Pause clears the spinner so a prompt can take over the terminal.
func (s *Spinner) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.stopLocked()
	s.paused = true
}

// Resume restarts a paused spinner with its previous message.
func (s *Spinner) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused {
		return
	}
	s.paused = false
	s.startLocked()
}

func (s *Spinner) startLocked() {
	if s.isRunning {
		if s.program != nil {
			s.program.Send(msgUpdate(s.message))
		}
		return
	}

	if !s.isTTY {
		// Non-TTY: just print the message once
		fmt.Fprintf(os.Stderr, "%s\n", DimStyle.Render(s.message))
		return
	}

	s.isRunning = true
	s.quitCh = make(chan struct{})

	model := newSpinnerModel(s.message)
	s.program = tea.NewProgram(model, tea.WithOutput(os.Stderr))

	go func() {
		_, _ = s.program.Run()
		close(s.quitCh)
	}()
}

func (s *Spinner) stopLocked() {
	if !s.isRunning {
		return
	}
	s.isRunning = false
	if s.program != nil {
		s.program.Send(msgQuit{})
		<-s.quitCh
		s.program = nil
	}
}
