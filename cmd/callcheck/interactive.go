package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/queue"
	"github.com/wippyai/mxe-call/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxInitialInputs caps the argument fields opened for a definition.
const maxInitialInputs = 12

type interactiveModel struct {
	err      error
	reg      *schema.Registry
	defs     []*schema.Definition
	inputs   []textinput.Model
	status   string
	result   string
	selected int
	focusIdx int
	ok       bool
	state    modelState
}

type modelState int

const (
	stateSelectDef modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(reg *schema.Registry) *interactiveModel {
	return &interactiveModel{
		reg:   reg,
		state: stateSelectDef,
	}
}

type loadedMsg struct {
	err  error
	defs []*schema.Definition
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadDefinitions
}

func (m *interactiveModel) loadDefinitions() tea.Msg {
	names, err := m.reg.Names()
	if err != nil {
		return loadedMsg{err: err}
	}
	defs := make([]*schema.Definition, 0, len(names))
	for _, n := range names {
		def, err := m.reg.Get(n)
		if err != nil {
			return loadedMsg{err: err}
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return loadedMsg{err: errors.Errorf("no interface files in %s", m.reg.BuildDir())}
	}
	return loadedMsg{defs: defs}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectDef && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectDef && m.selected < len(m.defs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectDef:
				if len(m.defs) == 0 {
					return m, nil
				}
				m.prepareInputs()
				m.state = stateInputArgs
				m.validate()
				return m, nil

			case stateInputArgs:
				m.submit()
				m.state = stateShowResult
				return m, nil

			case stateShowResult:
				m.state = stateSelectDef
				m.result = ""
			}

		case "tab", "shift+tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				step := 1
				if msg.String() == "shift+tab" {
					step = len(m.inputs) - 1
				}
				m.focusIdx = (m.focusIdx + step) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "ctrl+n":
			if m.state == stateInputArgs {
				m.addInput("")
				return m, nil
			}

		case "ctrl+d":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs = append(m.inputs[:m.focusIdx], m.inputs[m.focusIdx+1:]...)
				if m.focusIdx >= len(m.inputs) {
					m.focusIdx = len(m.inputs) - 1
				}
				m.inputs[m.focusIdx].Focus()
				m.validate()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectDef
				m.inputs = nil
			case stateShowResult:
				m.state = stateInputArgs
				m.result = ""
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.defs = msg.defs
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		m.validate()
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	def := m.defs[m.selected]
	m.inputs = nil
	m.focusIdx = 0
	for i, p := range def.Parameters {
		if i == maxInitialInputs {
			break
		}
		placeholder := "Kind value"
		if kinds := computation.Candidates(p); len(kinds) > 0 {
			placeholder = kinds[0].String() + " value"
		}
		m.addInput(placeholder)
	}
	if len(m.inputs) == 0 {
		m.addInput("")
	}
}

func (m *interactiveModel) addInput(placeholder string) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = "Kind value"
	}
	ti.Prompt = fmt.Sprintf("arg%d: ", len(m.inputs))
	ti.Width = 60
	if len(m.inputs) > 0 {
		m.inputs[m.focusIdx].Blur()
	}
	m.inputs = append(m.inputs, ti)
	m.focusIdx = len(m.inputs) - 1
	m.inputs[m.focusIdx].Focus()
}

// arguments parses every non-empty field. The returned index is the field
// that failed to parse, or -1.
func (m *interactiveModel) arguments() ([]computation.Argument, int, error) {
	args := make([]computation.Argument, 0, len(m.inputs))
	for i, in := range m.inputs {
		line := strings.TrimSpace(in.Value())
		if line == "" {
			continue
		}
		arg, err := parseArgLine(line)
		if err != nil {
			return nil, i, err
		}
		args = append(args, arg)
	}
	return args, -1, nil
}

// validate refreshes the live status line.
func (m *interactiveModel) validate() {
	def := m.defs[m.selected]
	args, idx, err := m.arguments()
	if err != nil {
		m.ok = false
		m.status = fmt.Sprintf("arg%d: %v", idx, err)
		return
	}
	consumed, err := computation.MatchSlots(args, def.Parameters)
	if me, isMatch := err.(*computation.MatchError); isMatch {
		m.ok = false
		m.status = fmt.Sprintf("%s (%d/%d slots)", me.Diagnostic(args), consumed, def.Slots())
		return
	}
	m.ok = true
	m.status = fmt.Sprintf("arguments fill %d/%d slots", consumed, def.Slots())
}

// submit runs the dynamic check and, on success, encodes the request the
// way it would be queued.
func (m *interactiveModel) submit() {
	def := m.defs[m.selected]
	args, idx, err := m.arguments()
	if err != nil {
		m.ok = false
		m.result = fmt.Sprintf("arg%d: %v", idx, err)
		return
	}
	if err := def.Check(args); err != nil {
		m.ok = false
		if me, isMatch := err.(*computation.MatchError); isMatch {
			m.result = me.Diagnostic(args)
		} else {
			m.result = err.Error()
		}
		return
	}

	req := &queue.Request{CompDefOffset: def.Offset, Args: args}
	payload, err := req.MarshalBinary()
	if err != nil {
		m.ok = false
		m.result = err.Error()
		return
	}
	m.ok = true
	m.result = fmt.Sprintf("valid call to %s (offset %d)\n%d argument(s), %d slot(s), %d payload bytes",
		def.Name, def.Offset, len(args), def.Slots(), len(payload))
}

// parseArgLine reads "Kind value", for example "PlaintextU8 5" or
// "Account <key>:0:64".
func parseArgLine(line string) (computation.Argument, error) {
	kindText, value, _ := strings.Cut(strings.TrimSpace(line), " ")
	kind, err := computation.ParseArgKind(kindText)
	if err != nil {
		return nil, err
	}
	return computation.ParseArgument(kind, strings.TrimSpace(value))
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.defs) == 0 {
		return "Loading interface files..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Call Check"))
	b.WriteString(" ")
	b.WriteString(m.reg.BuildDir())
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectDef:
		b.WriteString("Select an instruction:\n\n")
		for i, def := range m.defs {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + formatDef(def)))
			} else {
				b.WriteString("  " + formatDef(def))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit arguments • q quit"))

	case stateInputArgs:
		def := m.defs[m.selected]
		b.WriteString(fmt.Sprintf("Arguments for %s\n", funcStyle.Render(def.Name)))
		b.WriteString(typeStyle.Render(joinParams(def.Parameters)))
		b.WriteString("\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.ok {
			b.WriteString(resultStyle.Render(m.status))
		} else {
			b.WriteString(errorStyle.Render(m.status))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab next field • ctrl+n add • ctrl+d remove • enter check • esc back"))

	case stateShowResult:
		def := m.defs[m.selected]
		b.WriteString(fmt.Sprintf("Result for %s:\n\n", funcStyle.Render(def.Name)))
		if m.ok {
			b.WriteString(resultStyle.Render(m.result))
		} else {
			b.WriteString(errorStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter instructions • esc edit • q quit"))
	}

	return b.String()
}

func formatDef(def *schema.Definition) string {
	return funcStyle.Render(def.Name) +
		"(" + typeStyle.Render(joinParams(def.Parameters)) + ")" +
		fmt.Sprintf(" #%d", def.Offset)
}

func interactiveCommand(e *env, build cli.Flag) *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "build and check argument lists in a terminal UI",
		Flags:   []cli.Flag{build},
		Action: func(c *cli.Context) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return cli.Exit("interactive mode needs a terminal", 2)
			}
			reg, err := e.registry(c)
			if err != nil {
				return err
			}
			return runInteractive(c.Context, e, reg)
		},
	}
}

func runInteractive(ctx context.Context, e *env, reg *schema.Registry) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if e.cfg.Watch {
		go func() {
			if err := reg.Watch(ctx); err != nil && ctx.Err() == nil {
				e.logger.Warn("watch stopped", zap.Error(err))
			}
		}()
	}

	p := tea.NewProgram(newInteractiveModel(reg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
