package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Column kinds
		Initial: "#5F87D7",
		Pending: "#FFD700",
		Final:   "#5FD75F",
		Cancel:  "#878787",

		// Notifications
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}
