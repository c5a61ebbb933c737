// internal/sim/terminal_test.go
package sim

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tamzrod/slide-remote/internal/input"
)

func press(m model, k tea.KeyMsg) (model, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_KeysBecomeEvents(t *testing.T) {
	term := NewTerminal(8, 8, 1, 0)
	m := model{t: term}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(m, runes("p"))
	m, _ = press(m, runes("s"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = press(m, runes("x"))

	want := []input.Event{input.NextClick, input.PreviousClick, input.SelectShort, input.SelectLong}
	got := term.Read()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if term.Read() != nil {
		t.Fatalf("expected drained buffer")
	}
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m := model{t: NewTerminal(8, 8, 1, 0)}

	_, cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestBlit_CopiesIntoFrame(t *testing.T) {
	term := NewTerminal(10, 10, 1, 0)
	red := color.RGBA{R: 0xFF, A: 0xFF}

	r := image.Rect(2, 2, 5, 5)
	src := image.NewRGBA(r)
	draw.Draw(src, r, image.NewUniform(red), image.Point{}, draw.Src)

	if err := term.Blit(r, src); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if got := term.frame.RGBAAt(3, 3); got != red {
		t.Fatalf("expected red, got %v", got)
	}
	if got := term.frame.RGBAAt(6, 6); got == red {
		t.Fatalf("pixel outside region changed")
	}

	if err := term.Blit(image.Rect(8, 8, 12, 12), src); err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
}

func TestRenderFrame_HalfBlockRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 8))

	out := renderFrame(img, 1)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	if n := strings.Count(lines[0], upperHalf); n != 6 {
		t.Fatalf("expected 6 cells, got %d", n)
	}

	out = renderFrame(img, 2)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Fatalf("expected 2 rows at scale 2, got %d", n)
	}
}
