package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - dark chat theme, phone-messenger inspired.
var (
	colorBg       = lipgloss.Color("#0b0f14")
	colorBubbleIn = lipgloss.Color("#3b3b3d")
	colorBubbleOut = lipgloss.Color("#007aff")
	colorText     = lipgloss.Color("#f2f2f7")
	colorMuted    = lipgloss.Color("#8e8e93")
	colorGold     = lipgloss.Color("#f9e2af")
	colorGreen    = lipgloss.Color("#30d158")
	colorRed      = lipgloss.Color("#ff453a")
)

// Chat bubbles
var (
	bubbleInStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBubbleIn).
			Padding(0, 1)

	bubbleOutStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBubbleOut).
			Padding(0, 1)

	senderStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	replyQuoteStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	systemStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	promoStyle = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)
)

// Chrome
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBg).
			Background(colorGreen).
			Padding(0, 2)

	typingStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorGold).
			Padding(0, 1)

	replyBarStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
