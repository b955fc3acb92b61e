package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/mbarela/textforge/internal/config"
	"github.com/mbarela/textforge/internal/engine/cursor"
	"github.com/mbarela/textforge/internal/engine/textobject"
	"github.com/mbarela/textforge/internal/syntax"
)

// ErrNoPath is returned when saving a scratch session without a path.
var ErrNoPath = errors.New("app: session has no file path")

// Session is one open document: a writable buffer, the cursor into it,
// and the indentation machinery, identified by a uuid for logging.
//
// A session is single-owner; it has no internal locking.
type Session struct {
	id      uuid.UUID
	log     *Logger
	cfg     config.Config
	path    string
	buf     *textobject.Write
	cur     cursor.Cursor
	rules   *syntax.Rules
	indent  *syntax.Indenter
	bigword bool
}

// New creates a scratch session with empty content.
func New(cfg config.Config, log *Logger) (*Session, error) {
	return newSession("", "", cfg, log)
}

// Open creates a session over the contents of path. A missing file
// opens an empty buffer that will be created on save.
func Open(path string, cfg config.Config, log *Logger) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return newSession(path, string(data), cfg, log)
}

func newSession(path, content string, cfg config.Config, log *Logger) (*Session, error) {
	content = normalizeLineEndings(content, cfg.Editor.LineEnding)

	var rules *syntax.Rules
	if cfg.Editor.IndentRules != "" {
		r, err := syntax.LoadRules(cfg.Editor.IndentRules)
		if err != nil {
			return nil, err
		}
		rules = r
	}

	id := uuid.New()
	if log == nil {
		log = NewLogger(LogLevelInfo, nil)
	}
	log = log.WithField("session", id.String())

	var ro *textobject.Readonly
	switch cfg.Editor.LineEnding {
	case config.LineEndingLF:
		ro = textobject.FromLineBreak(content, textobject.LineBreakLF)
	case config.LineEndingCRLF:
		ro = textobject.FromLineBreak(content, textobject.LineBreakCRLF)
	default:
		ro = textobject.From(content)
	}

	s := &Session{
		id:      id,
		log:     log,
		cfg:     cfg,
		path:    path,
		buf:     ro.WithWrite(),
		cur:     cursor.New(),
		rules:   rules,
		indent:  syntax.NewIndenter(syntax.Parse(content), rules),
		bigword: cfg.Editor.BigWord,
	}

	log.Debug("session opened path=%q lines=%d", path, s.buf.LineCount())
	return s, nil
}

// normalizeLineEndings rewrites terminators when the config forces a
// convention; "auto" leaves content untouched for detection.
func normalizeLineEndings(content, policy string) string {
	switch policy {
	case config.LineEndingLF:
		return strings.ReplaceAll(content, "\r\n", "\n")
	case config.LineEndingCRLF:
		lf := strings.ReplaceAll(content, "\r\n", "\n")
		return strings.ReplaceAll(lf, "\n", "\r\n")
	default:
		return content
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Path returns the backing file path, empty for scratch sessions.
func (s *Session) Path() string { return s.path }

// Cursor returns the current cursor.
func (s *Session) Cursor() cursor.Cursor { return s.cur }

// Buffer returns the underlying text object for rendering.
func (s *Session) Buffer() *textobject.Write { return s.buf }

// Close releases the session's Lua rules, if any.
func (s *Session) Close() error {
	return s.rules.Close()
}

// clamp pins the cursor inside the buffer: row to an existing line,
// col to at most that line's length.
func (s *Session) clamp(c cursor.Cursor) cursor.Cursor {
	row := c.Row()
	if last := s.buf.LineCount() - 1; row > last {
		row = last
	}
	if row < 0 {
		row = 0
	}
	col := c.Col()
	if max := s.buf.LineLen(row); col > max {
		col = max
	}
	return cursor.At(col, row)
}

// MoveLeft moves the cursor left within the line.
func (s *Session) MoveLeft(n int) { s.cur = s.clamp(s.cur.MoveLeft(n)) }

// MoveRight moves the cursor right within the line.
func (s *Session) MoveRight(n int) { s.cur = s.clamp(s.cur.MoveRight(n)) }

// MoveUp moves the cursor up, clamping the column to the new line.
func (s *Session) MoveUp(n int) { s.cur = s.clamp(s.cur.MoveUp(n)) }

// MoveDown moves the cursor down, clamping the column to the new line.
func (s *Session) MoveDown(n int) { s.cur = s.clamp(s.cur.MoveDown(n)) }

// StartOfLine moves the cursor to column 0.
func (s *Session) StartOfLine() { s.cur = s.cur.WithCol(0) }

// EndOfLine moves the cursor past the last scalar of the line.
func (s *Session) EndOfLine() { s.cur = s.cur.WithCol(s.buf.LineLen(s.cur.Row())) }

// NextWord advances to the start of the next word.
func (s *Session) NextWord(count int, bigword bool) {
	s.applyPosition(s.buf.NextWord(s.cur, count, bigword || s.bigword))
}

// PrevWord moves back to the start of the previous word.
func (s *Session) PrevWord(count int, bigword bool) {
	s.applyPosition(s.buf.PrevWord(s.cur, count, bigword || s.bigword))
}

// WordEnd advances to the end of the current or next word.
func (s *Session) WordEnd(count int, bigword bool) {
	s.applyPosition(s.buf.WordEnd(s.cur, count, bigword || s.bigword))
}

// ParagraphForward jumps to the next blank line.
func (s *Session) ParagraphForward() {
	s.cur = cursor.At(0, s.buf.BlankLineBelow(s.cur))
}

// ParagraphBackward jumps to the previous blank line.
func (s *Session) ParagraphBackward() {
	s.cur = cursor.At(0, s.buf.BlankLineAbove(s.cur))
}

// LastCharOfWord moves to the last non-whitespace scalar before the
// whitespace run preceding the cursor.
func (s *Session) LastCharOfWord() {
	s.applyPosition(s.buf.CharBeforeWhitespace(s.cur))
}

// JumpToMatch jumps to the bracket matching the one at or after the
// cursor on the current line.
func (s *Session) JumpToMatch() {
	s.applyPosition(s.buf.MatchingToken(s.cur))
}

func (s *Session) applyPosition(p textobject.Position) {
	s.cur = s.clamp(cursor.At(p.Col, p.Row))
}

// InsertRune inserts one scalar and advances the cursor.
func (s *Session) InsertRune(r rune) {
	s.buf.InsertChar(r, s.cur)
	s.cur = s.cur.MoveRight(1)
	s.reparse()
}

// InsertNewline breaks the line at the cursor.
func (s *Session) InsertNewline() {
	s.buf.InsertLineBreak(s.cur)
	s.cur = cursor.At(0, s.cur.Row()+1)
	s.reparse()
}

// Backspace removes the scalar before the cursor, joining lines when
// the cursor sits at column 0.
func (s *Session) Backspace() {
	if s.cur.Col() == 0 {
		if s.cur.Row() == 0 {
			return
		}
		row := s.cur.Row() - 1
		col := s.buf.LineLen(row)
		s.buf.ErasePrevious(s.cur)
		if s.buf.LineBreak() == textobject.LineBreakCRLF {
			s.buf.ErasePrevious(cursor.At(col+1, row))
		}
		s.cur = cursor.At(col, row)
	} else {
		s.buf.ErasePrevious(s.cur)
		s.cur = s.cur.MoveLeft(1)
	}
	s.reparse()
}

// DeleteChar removes the scalar under the cursor.
func (s *Session) DeleteChar() {
	s.buf.EraseCurrent(s.cur)
	s.cur = s.clamp(s.cur)
	s.reparse()
}

// DeleteToLineEnd removes from the cursor to the end of the line.
func (s *Session) DeleteToLineEnd() {
	s.buf.EraseToLineEnd(s.cur)
	s.cur = s.clamp(s.cur)
	s.reparse()
}

// DeleteToLineStart removes from column 0 to the cursor.
func (s *Session) DeleteToLineStart() {
	s.buf.EraseToLineStart(s.cur)
	s.cur = s.cur.WithCol(0)
	s.reparse()
}

// DeleteLine removes the cursor's line.
func (s *Session) DeleteLine() {
	s.buf.DeleteLine(s.cur.Row())
	s.cur = s.clamp(s.cur.WithCol(0))
	s.reparse()
}

// DeleteWordForward removes the word run under the cursor.
func (s *Session) DeleteWordForward() {
	s.buf.DeleteWordForward(s.cur)
	s.cur = s.clamp(s.cur)
	s.reparse()
}

// DeleteWordBackward removes the word run before the cursor and pulls
// the cursor back by the removed count.
func (s *Session) DeleteWordBackward() {
	removed := s.buf.DeleteWordBackward(s.cur)
	s.cur = s.clamp(s.cur.MoveLeft(removed))
	s.reparse()
}

// OpenLineBelow inserts an indented line under the cursor and moves
// onto it.
func (s *Session) OpenLineBelow() {
	s.buf.InsertLineBelow(s.cur, s.indent)
	row := s.cur.Row() + 1
	s.cur = cursor.At(s.buf.LineLen(row), row)
	s.reparse()
}

// OpenLineAbove inserts an indented line over the cursor and moves
// onto it.
func (s *Session) OpenLineAbove() {
	s.buf.InsertLineAbove(s.cur, s.indent)
	row := s.cur.Row()
	s.cur = cursor.At(s.buf.LineLen(row), row)
	s.reparse()
}

// reparse rebuilds the bracket-scope tree from current content.
// Content is small relative to edit frequency in an interactive
// session; a full rescan keeps the tree correct without bookkeeping.
func (s *Session) reparse() {
	s.indent.Retree(syntax.Parse(s.buf.Render()))
}

// Save writes the buffer to its backing file.
func (s *Session) Save() error {
	return s.SaveAs(s.path)
}

// SaveAs writes the buffer to path and adopts it as the backing file.
func (s *Session) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(path, []byte(s.buf.Render()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.path = path
	s.log.Info("saved path=%q bytes=%d", path, len(s.buf.Render()))
	return nil
}
