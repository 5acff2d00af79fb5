// Package color provides terminal color theming for podctl.
//
// Colors are organized into semantic categories:
//   - Success: positive states (healthy cluster, completed operation)
//   - Error: failure states
//   - Info: informational elements
//   - Muted: de-emphasized text
//
// Styles adapt to dark and light terminal backgrounds and respect the
// NO_COLOR convention through lipgloss's renderer detection, so output
// stays readable when piped or redirected.
package color
