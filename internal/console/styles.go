package console

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to draw the table
type Styles struct {
	Header    lipgloss.Style
	Player    lipgloss.Style
	Dealer    lipgloss.Style
	Cash      lipgloss.Style
	Current   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Busted    lipgloss.Style
	Blackjack lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Prompt    lipgloss.Style
}

// NewStyles builds the styles for a renderer, which decides the colour profile
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true),
		Player:    r.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Dealer:    r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Cash:      r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		Current:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		RedCard:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		BlackCard: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		Hidden:    r.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
		Busted:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Blackjack: r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Info:      r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Prompt:    r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
	}
}
