package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dotty/internal/host"
)

// KeyStroke is one terminal key message in host terms. Terminals only
// report presses, so the host synthesizes the release.
type KeyStroke struct {
	Key       host.Key
	Modifiers host.KeyModifiers
	Text      string // committed text, forwarded unless the key was consumed
}

type strokeDef struct {
	key  host.Key
	mods host.KeyModifiers
}

var specialKeys = map[tea.KeyType]strokeDef{
	tea.KeyEnter:            {host.KeyEnter, host.ModNone},
	tea.KeyTab:              {host.KeyTab, host.ModNone},
	tea.KeyShiftTab:         {host.KeyTab, host.ModShift},
	tea.KeyBackspace:        {host.KeyBack, host.ModNone},
	tea.KeyEsc:              {host.KeyEscape, host.ModNone},
	tea.KeyDelete:           {host.KeyDelete, host.ModNone},
	tea.KeyInsert:           {host.KeyInsert, host.ModNone},
	tea.KeyHome:             {host.KeyHome, host.ModNone},
	tea.KeyEnd:              {host.KeyEnd, host.ModNone},
	tea.KeyPgUp:             {host.KeyPageUp, host.ModNone},
	tea.KeyPgDown:           {host.KeyPageDown, host.ModNone},
	tea.KeyUp:               {host.KeyUp, host.ModNone},
	tea.KeyDown:             {host.KeyDown, host.ModNone},
	tea.KeyLeft:             {host.KeyLeft, host.ModNone},
	tea.KeyRight:            {host.KeyRight, host.ModNone},
	tea.KeyShiftUp:          {host.KeyUp, host.ModShift},
	tea.KeyShiftDown:        {host.KeyDown, host.ModShift},
	tea.KeyShiftLeft:        {host.KeyLeft, host.ModShift},
	tea.KeyShiftRight:       {host.KeyRight, host.ModShift},
	tea.KeyCtrlUp:           {host.KeyUp, host.ModControl},
	tea.KeyCtrlDown:         {host.KeyDown, host.ModControl},
	tea.KeyCtrlLeft:         {host.KeyLeft, host.ModControl},
	tea.KeyCtrlRight:        {host.KeyRight, host.ModControl},
	tea.KeyCtrlShiftUp:      {host.KeyUp, host.ModControl | host.ModShift},
	tea.KeyCtrlShiftDown:    {host.KeyDown, host.ModControl | host.ModShift},
	tea.KeyCtrlShiftLeft:    {host.KeyLeft, host.ModControl | host.ModShift},
	tea.KeyCtrlShiftRight:   {host.KeyRight, host.ModControl | host.ModShift},
	tea.KeyShiftHome:        {host.KeyHome, host.ModShift},
	tea.KeyShiftEnd:         {host.KeyEnd, host.ModShift},
	tea.KeyCtrlHome:         {host.KeyHome, host.ModControl},
	tea.KeyCtrlEnd:          {host.KeyEnd, host.ModControl},
	tea.KeyCtrlShiftHome:    {host.KeyHome, host.ModControl | host.ModShift},
	tea.KeyCtrlShiftEnd:     {host.KeyEnd, host.ModControl | host.ModShift},
	tea.KeyCtrlPgUp:         {host.KeyPageUp, host.ModControl},
	tea.KeyCtrlPgDown:       {host.KeyPageDown, host.ModControl},
	tea.KeyCtrlBackslash:    {host.KeyOemPipe, host.ModControl},
	tea.KeyCtrlCloseBracket: {host.KeyOemCloseBrackets, host.ModControl},
	tea.KeyCtrlUnderscore:   {host.KeyOemMinus, host.ModControl | host.ModShift},
	tea.KeyF1:               {host.KeyF1, host.ModNone},
	tea.KeyF2:               {host.KeyF2, host.ModNone},
	tea.KeyF3:               {host.KeyF3, host.ModNone},
	tea.KeyF4:               {host.KeyF4, host.ModNone},
	tea.KeyF5:               {host.KeyF5, host.ModNone},
	tea.KeyF6:               {host.KeyF6, host.ModNone},
	tea.KeyF7:               {host.KeyF7, host.ModNone},
	tea.KeyF8:               {host.KeyF8, host.ModNone},
	tea.KeyF9:               {host.KeyF9, host.ModNone},
	tea.KeyF10:              {host.KeyF10, host.ModNone},
	tea.KeyF11:              {host.KeyF11, host.ModNone},
	tea.KeyF12:              {host.KeyF12, host.ModNone},
}

// US layout positions of the printable ASCII punctuation.
var punctuation = map[rune]strokeDef{
	' ':  {host.KeySpace, host.ModNone},
	'=':  {host.KeyOemPlus, host.ModNone},
	'+':  {host.KeyOemPlus, host.ModShift},
	'-':  {host.KeyOemMinus, host.ModNone},
	'_':  {host.KeyOemMinus, host.ModShift},
	'[':  {host.KeyOemOpenBrackets, host.ModNone},
	'{':  {host.KeyOemOpenBrackets, host.ModShift},
	']':  {host.KeyOemCloseBrackets, host.ModNone},
	'}':  {host.KeyOemCloseBrackets, host.ModShift},
	'\'': {host.KeyOemQuotes, host.ModNone},
	'"':  {host.KeyOemQuotes, host.ModShift},
	';':  {host.KeyOemSemicolon, host.ModNone},
	':':  {host.KeyOemSemicolon, host.ModShift},
	'\\': {host.KeyOemPipe, host.ModNone},
	'|':  {host.KeyOemPipe, host.ModShift},
	',':  {host.KeyOemComma, host.ModNone},
	'<':  {host.KeyOemComma, host.ModShift},
	'.':  {host.KeyOemPeriod, host.ModNone},
	'>':  {host.KeyOemPeriod, host.ModShift},
	'/':  {host.KeyOemQuestion, host.ModNone},
	'?':  {host.KeyOemQuestion, host.ModShift},
	'`':  {host.KeyOemTilde, host.ModNone},
	'~':  {host.KeyOemTilde, host.ModShift},
	'!':  {host.KeyD1, host.ModShift},
	'@':  {host.KeyD2, host.ModShift},
	'#':  {host.KeyD3, host.ModShift},
	'$':  {host.KeyD4, host.ModShift},
	'%':  {host.KeyD5, host.ModShift},
	'^':  {host.KeyD6, host.ModShift},
	'&':  {host.KeyD7, host.ModShift},
	'*':  {host.KeyD8, host.ModShift},
	'(':  {host.KeyD9, host.ModShift},
	')':  {host.KeyD0, host.ModShift},
}

// Stroke translates a Bubble Tea key message. It returns false for
// messages that carry neither a known key nor text.
func Stroke(msg tea.KeyMsg) (KeyStroke, bool) {
	var s KeyStroke
	if msg.Alt {
		s.Modifiers |= host.ModAlt
	}

	if def, ok := specialKeys[msg.Type]; ok {
		s.Key = def.key
		s.Modifiers |= def.mods
		return s, true
	}

	switch {
	case msg.Type == tea.KeySpace:
		s.Key = host.KeySpace
		if !msg.Alt {
			s.Text = " "
		}
		return s, true

	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		s.Key = host.KeyA + host.Key(msg.Type-tea.KeyCtrlA)
		s.Modifiers |= host.ModControl
		return s, true

	case msg.Type == tea.KeyRunes:
		return runeStroke(s, msg.Runes)
	}

	return s, false
}

func runeStroke(s KeyStroke, runes []rune) (KeyStroke, bool) {
	if len(runes) == 0 {
		return s, false
	}
	if s.Modifiers == host.ModNone {
		s.Text = string(runes)
	}
	// pasted or composed text has no single key
	if len(runes) > 1 {
		return s, s.Text != ""
	}

	r := runes[0]
	switch {
	case r >= 'A' && r <= 'Z':
		s.Key, _ = host.Letter(r)
		s.Modifiers |= host.ModShift
	case r >= 'a' && r <= 'z':
		s.Key, _ = host.Letter(r)
	case r >= '0' && r <= '9':
		s.Key, _ = host.Digit(r)
	default:
		if def, ok := punctuation[r]; ok {
			s.Key = def.key
			s.Modifiers |= def.mods
		}
	}
	return s, s.Key != host.KeyNone || s.Text != ""
}

// KeyMap defines the host shortcuts. They are checked before a key is
// offered to the terminal.
type KeyMap struct {
	Quit      key.Binding
	Reattach  key.Binding
	ScaleUp   key.Binding
	ScaleDown key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reattach, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Reattach, k.Quit}, {k.ScaleUp, k.ScaleDown}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Reattach: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reattach surface"),
		),
		ScaleUp: key.NewBinding(
			key.WithKeys("alt+="),
			key.WithHelp("alt+=", "scale up"),
		),
		ScaleDown: key.NewBinding(
			key.WithKeys("alt+-"),
			key.WithHelp("alt+-", "scale down"),
		),
	}
}
