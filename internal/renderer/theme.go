package renderer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rune/internal/input/mode"
)

// Theme is the set of styles used to paint the screen.
type Theme struct {
	Name string

	Text    tcell.Style
	Keyword tcell.Style
	String  tcell.Style
	Number  tcell.Style
	Comment tcell.Style
	Gutter  tcell.Style

	// Pending shows an operator waiting for its motion.
	Pending tcell.Style

	// Status is used for the status text after the mode badge.
	Status tcell.Style

	// Command is used for the command line in Command mode.
	Command tcell.Style

	NormalBadge tcell.Style
	InsertBadge tcell.Style
	OtherBadge  tcell.Style
}

// Badge returns the badge style for m.
func (t Theme) Badge(m mode.Mode) tcell.Style {
	switch m {
	case mode.Normal:
		return t.NormalBadge
	case mode.Insert:
		return t.InsertBadge
	default:
		return t.OtherBadge
	}
}

// TokenStyle maps a lexer token type to a style.
func (t Theme) TokenStyle(tt chroma.TokenType) tcell.Style {
	switch {
	case tt.InCategory(chroma.Keyword):
		return t.Keyword
	case tt.InCategory(chroma.Comment):
		return t.Comment
	case tt.InSubCategory(chroma.LiteralString):
		return t.String
	case tt.InSubCategory(chroma.LiteralNumber):
		return t.Number
	default:
		return t.Text
	}
}

var badges = struct{ normal, insert, other tcell.Style }{
	normal: tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite),
	insert: tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack),
	other:  tcell.StyleDefault.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite),
}

// DarkTheme is the default theme.
func DarkTheme() Theme {
	return Theme{
		Name:        "dark",
		Text:        tcell.StyleDefault,
		Keyword:     tcell.StyleDefault.Foreground(tcell.ColorAqua),
		String:      tcell.StyleDefault.Foreground(tcell.ColorLightGreen),
		Number:      tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		Comment:     tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true),
		Gutter:      tcell.StyleDefault.Foreground(tcell.ColorGray),
		Pending:     tcell.StyleDefault.Background(tcell.NewRGBColor(50, 50, 50)).Foreground(tcell.ColorYellow).Bold(true),
		Status:      tcell.StyleDefault.Background(tcell.NewRGBColor(50, 50, 50)).Foreground(tcell.ColorWhite),
		Command:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
		NormalBadge: badges.normal,
		InsertBadge: badges.insert,
		OtherBadge:  badges.other,
	}
}

// LightTheme is a palette for light terminal backgrounds.
func LightTheme() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	return Theme{
		Name:        "light",
		Text:        base,
		Keyword:     base.Foreground(tcell.ColorNavy).Bold(true),
		String:      base.Foreground(tcell.ColorGreen),
		Number:      base.Foreground(tcell.ColorMaroon),
		Comment:     base.Foreground(tcell.ColorGray).Italic(true),
		Gutter:      base.Foreground(tcell.ColorGray),
		Pending:     tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorMaroon).Bold(true),
		Status:      tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack),
		Command:     base.Foreground(tcell.ColorOlive),
		NormalBadge: badges.normal,
		InsertBadge: badges.insert,
		OtherBadge:  badges.other,
	}
}

// ThemeByName returns the named theme. Unknown names yield the dark
// theme and false.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return DarkTheme(), false
	}
}
