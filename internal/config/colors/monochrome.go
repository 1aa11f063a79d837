package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Initial: "#FFFFFF",
		Pending: "#D0D0D0",
		Final:   "#FFFFFF",
		Cancel:  "#585858",

		Success: "#FFFFFF",
		Warning: "#D0D0D0",
		Error:   "#FFFFFF",
	}
}
