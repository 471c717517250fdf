package colors

// ColorScheme defines all configurable color values for CLI output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles, field labels, table headers)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text such as empty descriptions
	Normal string `yaml:"normal"`

	// Activity status colors
	Planned    string `yaml:"planned"`
	InProgress string `yaml:"in_progress"`
	Done       string `yaml:"done"`

	// Progress bar gradient
	ProgressStart string `yaml:"progress_start"`
	ProgressEnd   string `yaml:"progress_end"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot so merge and defaulting stay in sync
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Title, &c.Subtle, &c.Normal,
		&c.Planned, &c.InProgress, &c.Done,
		&c.ProgressStart, &c.ProgressEnd,
		&c.InfoFg, &c.InfoBg,
		&c.WarningFg, &c.WarningBg,
		&c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst, src := c.fields(), preset.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst, src := c.fields(), other.fields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}
