package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mbarela/textforge/internal/app"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

func (m mode) String() string {
	if m == modeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// editor is the terminal front end: a modal keymap over one session.
type editor struct {
	screen  tcell.Screen
	session *app.Session
	log     *app.Logger

	mode    mode
	count   int
	pending rune // operator awaiting a motion, e.g. the first d of dd
	status  string
	quit    bool
}

func newEditor(session *app.Session, log *app.Logger) (*editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &editor{
		screen:  screen,
		session: session,
		log:     log,
	}, nil
}

// Run drives the draw/poll loop until quit.
func (e *editor) Run() error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()

	for !e.quit {
		e.draw()
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			e.handleKey(ev)
		case *tcell.EventResize:
			e.screen.Sync()
		case nil:
			return nil
		}
	}
	return nil
}

func (e *editor) draw() {
	e.screen.Clear()
	width, height := e.screen.Size()

	buf := e.session.Buffer()
	for row := 0; row < height-1 && row < buf.LineCount(); row++ {
		line, ok := buf.LineText(row)
		if !ok {
			break
		}
		col := 0
		for _, r := range line {
			if r == '\n' || r == '\r' || col >= width {
				break
			}
			e.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
			col++
		}
	}

	e.drawStatus(width, height-1)

	cur := e.session.Cursor()
	e.screen.ShowCursor(cur.Col(), cur.Row())
	e.screen.Show()
}

func (e *editor) drawStatus(width, row int) {
	cur := e.session.Cursor()
	path := e.session.Path()
	if path == "" {
		path = "[scratch]"
	}
	id := e.session.ID().String()[:8]
	left := fmt.Sprintf(" %s  %s  [%s]  %d:%d", e.mode, path, id, cur.Row()+1, cur.Col()+1)
	if e.status != "" {
		left += "  " + e.status
	}

	style := tcell.StyleDefault.Reverse(true)
	for col := 0; col < width; col++ {
		r := ' '
		if col < len(left) {
			r = rune(left[col])
		}
		e.screen.SetContent(col, row, r, nil, style)
	}
}

func (e *editor) handleKey(ev *tcell.EventKey) {
	e.status = ""
	if e.mode == modeInsert {
		e.handleInsertKey(ev)
		return
	}
	e.handleNormalKey(ev)
}

func (e *editor) handleInsertKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.mode = modeNormal
	case tcell.KeyEnter:
		e.session.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.session.Backspace()
	case tcell.KeyCtrlW:
		e.session.DeleteWordBackward()
	case tcell.KeyCtrlU:
		e.session.DeleteToLineStart()
	case tcell.KeyTab:
		e.session.InsertRune('\t')
	case tcell.KeyRune:
		e.session.InsertRune(ev.Rune())
	}
}

func (e *editor) handleNormalKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlS {
		e.save()
		return
	}
	if ev.Key() == tcell.KeyEscape {
		e.count = 0
		e.pending = 0
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	r := ev.Rune()

	if r >= '1' && r <= '9' || (r == '0' && e.count > 0) {
		e.count = e.count*10 + int(r-'0')
		return
	}

	if e.pending == 'd' {
		e.pending = 0
		switch r {
		case 'd':
			e.session.DeleteLine()
		case 'w':
			e.session.DeleteWordForward()
		}
		return
	}
	if e.pending == 'g' {
		e.pending = 0
		if r == '_' {
			e.session.LastCharOfWord()
		}
		return
	}

	n := e.takeCount()
	switch r {
	case 'h':
		e.session.MoveLeft(n)
	case 'l':
		e.session.MoveRight(n)
	case 'k':
		e.session.MoveUp(n)
	case 'j':
		e.session.MoveDown(n)
	case '0':
		e.session.StartOfLine()
	case '$':
		e.session.EndOfLine()
	case 'w':
		e.session.NextWord(n, false)
	case 'W':
		e.session.NextWord(n, true)
	case 'b':
		e.session.PrevWord(n, false)
	case 'B':
		e.session.PrevWord(n, true)
	case 'e':
		e.session.WordEnd(n, false)
	case 'E':
		e.session.WordEnd(n, true)
	case '{':
		e.session.ParagraphBackward()
	case '}':
		e.session.ParagraphForward()
	case '%':
		e.session.JumpToMatch()
	case 'x':
		e.session.DeleteChar()
	case 'X':
		e.session.DeleteToLineStart()
	case 'D':
		e.session.DeleteToLineEnd()
	case 'd':
		e.pending = 'd'
	case 'g':
		e.pending = 'g'
	case 'i':
		e.mode = modeInsert
	case 'a':
		e.session.MoveRight(1)
		e.mode = modeInsert
	case 'o':
		e.session.OpenLineBelow()
		e.mode = modeInsert
	case 'O':
		e.session.OpenLineAbove()
		e.mode = modeInsert
	case 'q':
		e.quit = true
	}
}

// takeCount returns the pending count prefix, defaulting to 1.
func (e *editor) takeCount() int {
	n := e.count
	e.count = 0
	if n < 1 {
		n = 1
	}
	return n
}

func (e *editor) save() {
	if err := e.session.Save(); err != nil {
		e.status = fmt.Sprintf("save failed: %v", err)
		e.log.Error("save: %v", err)
		return
	}
	e.status = "saved"
}
