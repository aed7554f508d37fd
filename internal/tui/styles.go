package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Neutral palette of the presenter. Slide colors come from the deck.
var (
	Background = lipgloss.Color("#050505")
	Foreground = lipgloss.Color("#f2f2f2")
	Muted      = lipgloss.Color("#6b6b6b")
	Subtle     = lipgloss.Color("#2a2a2a")
	Rationale  = lipgloss.Color("#60a5fa")
	Action     = lipgloss.Color("#facc15")
	Revision   = lipgloss.Color("#34d399")
)

// Gradient is the pair of colors parsed from a slide color token.
type Gradient struct {
	From lipgloss.Color
	To   lipgloss.Color
}

// ParseGradient reads a "#from..#to" token. A single color is used for both
// ends; an empty token falls back to the foreground color.
func ParseGradient(token string) Gradient {
	from, to, found := strings.Cut(strings.TrimSpace(token), "..")
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if from == "" {
		return Gradient{From: Foreground, To: Foreground}
	}

	if !found || to == "" {
		to = from
	}

	return Gradient{From: lipgloss.Color(from), To: lipgloss.Color(to)}
}

// Icon maps an icon token to a terminal glyph.
func Icon(token string) string {
	switch token {
	case "brain-circuit":
		return "◈"
	case "sparkles":
		return "✦"
	case "heart-handshake":
		return "♥"
	case "target":
		return "◎"
	default:
		return "●"
	}
}

// Styles holds the lipgloss styles of the presenter.
type Styles struct {
	Header       lipgloss.Style
	Tagline      lipgloss.Style
	Label        lipgloss.Style
	Author       lipgloss.Style
	Section      lipgloss.Style
	Card         lipgloss.Style
	CardHeading  lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Divider      lipgloss.Style
	Indicator    lipgloss.Style
	IndicatorOn  lipgloss.Style
	Control      lipgloss.Style
	FooterCopy   lipgloss.Style
	Signature    lipgloss.Style
	Transitioned lipgloss.Style
}

// DefaultStyles returns the dark presentation styles.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Tagline:     lipgloss.NewStyle().Foreground(Muted),
		Label:       lipgloss.NewStyle().Foreground(Muted),
		Author:      lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Section:     lipgloss.NewStyle().Foreground(Muted).Bold(true),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Subtle).Padding(0, 1),
		CardHeading: lipgloss.NewStyle().Bold(true).Foreground(Muted),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Subtitle:    lipgloss.NewStyle().Italic(true).Foreground(Muted),
		Divider:     lipgloss.NewStyle().Foreground(Subtle),
		Indicator:   lipgloss.NewStyle().Foreground(Subtle),
		IndicatorOn: lipgloss.NewStyle().Foreground(Foreground),
		Control:     lipgloss.NewStyle().Foreground(Foreground).Border(lipgloss.RoundedBorder()).BorderForeground(Subtle).Padding(0, 1),
		FooterCopy:  lipgloss.NewStyle().Foreground(Subtle),
		Signature:   lipgloss.NewStyle().Foreground(Subtle),
		// Dims the focus card during the settle window.
		Transitioned: lipgloss.NewStyle().Faint(true),
	}
}

// FocusCard returns the style of the central title card.
func (s Styles) FocusCard(g Gradient, transitioning bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(g.From).
		Padding(1, 2).
		Align(lipgloss.Center)

	if transitioning {
		return style.Inherit(s.Transitioned).BorderForeground(Subtle)
	}

	return style
}
