package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea state for the interactive single-step debugger.
type model struct {
	cpu    *CPUState
	offset uint16 // not read; pageTable positions the memory rows from IP
	err    error
}

// Init is called once before the first Update.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles a single key press: "q" quits, space or "j" single-steps.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			if m.cpu.Halted() {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%#04x | ", start)
	for i := uint16(0); i < 8; i++ {
		addr := start + i
		w := m.cpu.Mem.Read(int(addr))
		if addr == m.cpu.IP {
			s += fmt.Sprintf("[%04x] ", w)
		} else {
			s += fmt.Sprintf(" %04x  ", w)
		}
	}
	return s
}

func (m model) status() string {
	return fmt.Sprintf(`
IP: %#04x
JP: %#04x
RF: %#04x
ST: %#04x
skip: %v
X: %v
Y: %v
`,
		m.cpu.IP, m.cpu.JP, m.cpu.RF, m.cpu.ST, m.cpu.skip, m.cpu.X, m.cpu.Y,
	)
}

func (m model) pageTable() string {
	var rows []string
	base := m.cpu.IP - (m.cpu.IP % 8)
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(uint16(int(base)+8*i)))
	}
	return strings.Join(rows, "\n")
}

// View renders the page table, register status, and the decoded current
// opcode, if any.
func (m model) View() string {
	iw := m.cpu.Mem.Read(int(m.cpu.IP))
	opcode := uint8(iw >> 8)
	op, known := opcodeTable[opcode]
	decoded := "unknown opcode"
	if known {
		decoded = spew.Sdump(op)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		decoded,
	)
}

// Debug starts an interactive single-step TUI over cpu, beginning at IP.
func Debug(c *CPUState) {
	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		panic(err)
	}
	if x, ok := m.(model); ok && x.err != nil {
		fmt.Println("Error:", x.err)
	}
}
