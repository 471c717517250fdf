// Package styles renders human-readable CLI output with lipgloss
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/avance/internal/config"
	"github.com/thenoetrevino/avance/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Start:", "Status:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Activities"

	// Notification styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// ProgressWidth is the width of rendered progress bars including the percentage
	ProgressWidth = 40

	statusColors   map[models.Status]string
	progressColors [2]string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	statusColors = map[models.Status]string{
		models.StatusPlanned:    colors.Planned,
		models.StatusInProgress: colors.InProgress,
		models.StatusDone:       colors.Done,
	}
	progressColors = [2]string{colors.ProgressStart, colors.ProgressEnd}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStatus renders an activity status as a colored chip like "[Done]"
func RenderStatus(status models.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColors[status])).
		Bold(true).
		Render("[" + status.String() + "]")
}

// RenderProgress renders fraction (0..1) as a static gradient bar with a percentage
func RenderProgress(fraction float64) string {
	bar := progress.New(
		progress.WithGradient(progressColors[0], progressColors[1]),
		progress.WithWidth(ProgressWidth),
	)
	return bar.ViewAs(fraction)
}

// RenderField renders a "Label: value" line
func RenderField(label, value string) string {
	if value == "" {
		value = SubtitleStyle.Render("(none)")
	} else {
		value = ValueStyle.Render(value)
	}
	return LabelStyle.Render(label+":") + " " + value
}

// RenderProjectCard renders a project with its progress bar
func RenderProjectCard(p *models.Project, fraction float64) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", p.ID, p.Name)))
	b.WriteString("\n\n")
	if desc := RenderDescription(p.Description, DescriptionWidth); desc != "" {
		b.WriteString(LabelStyle.Render("Description:") + "\n" + desc + "\n\n")
	} else {
		b.WriteString(RenderField("Description", "") + "\n")
	}
	b.WriteString(RenderField("Start", p.StartDate) + "\n")
	b.WriteString(RenderField("End", p.EndDate) + "\n")
	b.WriteString(LabelStyle.Render("Progress:") + " " + RenderProgress(fraction))
	return RenderCard(b.String())
}

// RenderActivityLine renders a one-line activity summary
func RenderActivityLine(a *models.Activity) string {
	return fmt.Sprintf("%s #%d %s %s",
		RenderStatus(a.Status),
		a.ID,
		ValueStyle.Render(a.Name),
		SubtitleStyle.Render(a.StartDate+" → "+a.EndDate))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
