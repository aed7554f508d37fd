package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
)

const (
	// DefaultWidth is used until the terminal reports its size.
	DefaultWidth = 120
	// DefaultHeight is used until the terminal reports its size.
	DefaultHeight = 40
	// stackedBelow is the width under which the columns are stacked.
	stackedBelow = 90
	// columnGap separates the three columns.
	columnGap = 2
)

// frame is everything a render depends on.
type frame struct {
	state         carousel.Snapshot
	info          carousel.Info
	width         int
	height        int
	styles        Styles
	markdown      *markdownRenderer
	position      string
	helpView      string
	wideIndicator int
}

// render draws one full screen for f.
func render(f frame) string {
	if f.width <= 0 {
		f.width = DefaultWidth
	}

	if f.height <= 0 {
		f.height = DefaultHeight
	}

	header := renderHeader(f)
	body := renderBody(f)
	footer := renderFooter(f)

	screen := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)

	return lipgloss.PlaceHorizontal(f.width, lipgloss.Left, screen)
}

// renderHeader draws the deck title and the educator line.
func renderHeader(f frame) string {
	s := f.styles

	left := lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render(Icon("target")+" "+strings.ToUpper(f.info.Title)),
		s.Tagline.Render(f.info.Tagline),
	)

	if f.info.Author == "" {
		return left
	}

	right := lipgloss.JoinVertical(lipgloss.Right,
		s.Label.Render("Educator"),
		s.Author.Render(f.info.Author),
	)

	gap := f.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

// renderBody draws the strategy column, the focus card and the practice
// column side by side, or stacked on narrow terminals.
func renderBody(f frame) string {
	slide := f.state.Slide

	if f.width < stackedBelow {
		width := f.width

		return lipgloss.JoinVertical(lipgloss.Left,
			renderFocus(f, slide, width),
			renderStrategy(f, slide, width),
			renderPractice(f, slide, width),
		)
	}

	width := (f.width - 2*columnGap) / 3
	gap := strings.Repeat(" ", columnGap)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderStrategy(f, slide, width),
		gap,
		renderFocus(f, slide, width),
		gap,
		renderPractice(f, slide, width),
	)
}

// renderStrategy draws the rationale and the action step.
func renderStrategy(f frame, slide carousel.Slide, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		f.styles.Section.Render("01. STRATEGY INTENT"),
		renderCard(f, "Rationale", Rationale, slide.Rationale, width),
		renderCard(f, "Action Step", Action, slide.ActionStep, width),
	)
}

// renderPractice draws the application example and the revision plan.
func renderPractice(f frame, slide carousel.Slide, width int) string {
	blocks := []string{
		f.styles.Section.Render("02. PRACTICE & EVOLUTION"),
		renderCard(f, "Application Example", Foreground, "> "+slide.Example, width),
		renderCard(f, "Reflect & Plan for Revisions", Revision, slide.RevisionPlan, width),
	}

	if f.info.Author != "" {
		blocks = append(blocks, f.styles.Signature.Render("→ "+f.info.Author))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderCard draws a bordered block with a colored heading and markdown body.
func renderCard(f frame, heading string, color lipgloss.Color, text string, width int) string {
	card := f.styles.Card.Width(width - 2)
	inner := width - 2 - card.GetHorizontalPadding()

	return card.Render(lipgloss.JoinVertical(lipgloss.Left,
		f.styles.CardHeading.Foreground(color).Render(strings.ToUpper(heading)),
		f.markdown.Render(text, inner),
	))
}

// renderFocus draws the slide icon, title and subtitle. The card is dimmed
// while the carousel is transitioning.
func renderFocus(f frame, slide carousel.Slide, width int) string {
	gradient := ParseGradient(slide.Color)
	card := f.styles.FocusCard(gradient, f.state.IsTransitioning).Width(width - 2)
	inner := width - 2 - card.GetHorizontalPadding()

	icon := lipgloss.NewStyle().Foreground(gradient.To).Bold(true).Render(Icon(slide.Icon))
	divider := f.styles.Divider.Foreground(gradient.From).Render(strings.Repeat("━", min(8, inner)))

	lines := []string{
		icon,
		"",
		f.styles.Title.Width(inner).Align(lipgloss.Center).Render(slide.Title),
		divider,
	}

	if slide.Subtitle != "" {
		lines = append(lines, f.styles.Subtitle.Width(inner).Align(lipgloss.Center).Render("“"+slide.Subtitle+"”"))
	}

	return card.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderFooter draws the controls, the position indicators and the footer copy.
func renderFooter(f frame) string {
	s := f.styles

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Control.Render("‹"),
		" ",
		renderIndicators(f),
		" ",
		s.Control.Render("›"),
		"  ",
		s.Label.Render(f.position),
	)

	lines := []string{lipgloss.PlaceHorizontal(f.width, lipgloss.Center, controls)}

	if f.info.Footer != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(f.width, lipgloss.Center, s.FooterCopy.Render(strings.ToUpper(f.info.Footer))))
	}

	if f.helpView != "" {
		lines = append(lines, "", f.helpView)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderIndicators draws one dash per slide. The active one is wider and
// takes the slide color.
func renderIndicators(f frame) string {
	gradient := ParseGradient(f.state.Slide.Color)
	parts := make([]string, 0, f.state.Total)

	for i := 0; i < f.state.Total; i++ {
		if i == f.state.ActiveIndex {
			parts = append(parts, f.styles.IndicatorOn.Foreground(gradient.From).Render(strings.Repeat("━", f.wideIndicator)))

			continue
		}

		parts = append(parts, f.styles.Indicator.Render("━"))
	}

	return strings.Join(parts, " ")
}

// positionLabel is the "current / total" label of the footer.
func positionLabel(state carousel.Snapshot) string {
	return fmt.Sprintf("%d / %d", state.ActiveIndex+1, state.Total)
}
