// internal/sim/model.go
package sim

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tamzrod/slide-remote/internal/input"
)

type frameMsg time.Time

type model struct {
	t *Terminal
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.t.fps, func(ts time.Time) tea.Msg {
		return frameMsg(ts)
	})
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.t.push(input.NextClick)
		case key.Matches(msg, keys.Previous):
			m.t.push(input.PreviousClick)
		case key.Matches(msg, keys.Select):
			m.t.push(input.SelectShort)
		case key.Matches(msg, keys.Long):
			m.t.push(input.SelectLong)
		}
		return m, nil

	case frameMsg:
		return m, m.tick()
	}
	return m, nil
}

func (m model) View() string {
	return m.t.view() + "\n" + helpStyle.Render(helpLine())
}
