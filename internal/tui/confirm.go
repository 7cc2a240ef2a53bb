package tui

// renderConfirmOverlay draws the y/n prompt pages append under their view
// while a destructive action awaits confirmation.
func renderConfirmOverlay(message string) string {
	content := message + "\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
