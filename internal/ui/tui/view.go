package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
)

var (
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Width(14)
	countStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Transaction Counter"))
	b.WriteString("\n\n")

	cur, ok := m.accounts.GetCurrentAccount()
	if !ok {
		b.WriteString("No accounts yet. Press a to add one.\n\n")
		b.WriteString(helpStyle.Render("a add • q quit"))
		m.writeNotice(&b)
		return b.String()
	}

	b.WriteString(m.tabs(cur.ID))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.body(cur)))
	b.WriteString("\n")

	switch m.mode {
	case modeEdit:
		fmt.Fprintf(&b, "Edit %s:\n%s\n", strings.ToLower(m.field.String()), m.input.View())
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	case modeConfirmDelete:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete account %q? This action cannot be undone. [y/N]", cur.Name)))
	default:
		help := helpStyle
		if m.width > 0 {
			help = help.Width(m.width)
		}
		b.WriteString(help.Render("↑ increment • ↓ decrement • ←/→ switch • a add • r reset • n name • m amount • x multiplier • d delete • s save • q quit"))
	}

	m.writeNotice(&b)
	return b.String()
}

func (m Model) writeNotice(b *strings.Builder) {
	if m.notice.text == "" {
		return
	}
	b.WriteString("\n")
	if m.notice.isErr {
		b.WriteString(errorStyle.Render(m.notice.text))
	} else {
		b.WriteString(infoStyle.Render(m.notice.text))
	}
}

func (m Model) tabs(current model.AccountID) string {
	var tabs []string
	for _, acc := range m.accounts.GetAllAccounts() {
		if acc.ID == current {
			tabs = append(tabs, activeTab.Render(acc.Name))
		} else {
			tabs = append(tabs, inactiveTab.Render(acc.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) body(acc model.Account) string {
	rows := []string{
		labelStyle.Render("Name") + acc.Name,
		labelStyle.Render("Amount") + formatNumber(acc.TransactionAmount),
		labelStyle.Render("Multiplier") + formatNumber(acc.TransactionMultiplier),
		labelStyle.Render("Transactions") + countStyle.Render(fmt.Sprintf("%d", acc.TransactionCount)),
		labelStyle.Render("Total Value") + totalStyle.Render(utils.FormatTotal(acc.Total(), m.precision)),
	}
	return strings.Join(rows, "\n")
}

func formatNumber(v float64) string {
	return utils.FormatNumber(v)
}
