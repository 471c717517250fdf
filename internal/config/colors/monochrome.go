package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		Planned:    "#808080",
		InProgress: "#D0D0D0",
		Done:       "#FFFFFF",

		ProgressStart: "#808080",
		ProgressEnd:   "#FFFFFF",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#303030",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#303030",
	}
}
