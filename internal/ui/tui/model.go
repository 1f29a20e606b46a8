// Package tui is the interactive counter: one tab per account, arrow keys to
// count, and inline editing of the account fields.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/validation"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeConfirmDelete
)

type field int

const (
	fieldName field = iota
	fieldAmount
	fieldMultiplier
)

func (f field) String() string {
	switch f {
	case fieldName:
		return "Name"
	case fieldAmount:
		return "Amount"
	default:
		return "Multiplier"
	}
}

const saveTimeout = 5 * time.Second

// Accounts is the part of the account service the counter drives.
type Accounts interface {
	GetAllAccounts() []model.Account
	GetCurrentAccount() (model.Account, bool)
	CreateAccount(name string) model.Account
	SelectAccount(id model.AccountID) bool
	RenameAccount(id model.AccountID, name string) (model.Account, bool)
	SetAmount(id model.AccountID, raw string) (validation.Result, bool)
	SetMultiplier(id model.AccountID, raw string) (validation.Result, bool)
	Increment(id model.AccountID) (model.Account, bool)
	Decrement(id model.AccountID) (model.Account, bool)
	ResetCount(id model.AccountID) (model.Account, bool)
	DeleteAccount(id model.AccountID) bool
	Save(ctx context.Context) error
	Failures() <-chan service.SaveFailure
}

type saveFailedMsg service.SaveFailure

type notice struct {
	text  string
	isErr bool
}

type Model struct {
	ctx       context.Context
	accounts  Accounts
	precision int32

	mode  mode
	field field
	input textinput.Model

	notice   notice
	width    int
	quitting bool
}

// New builds the counter. The failure listener stops once ctx is done, so
// save failures after the program exits stay with the caller.
func New(ctx context.Context, accounts Accounts, precision int32) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 256

	return Model{
		ctx:       ctx,
		accounts:  accounts,
		precision: precision,
		input:     input,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForFailure(m.ctx, m.accounts.Failures())
}

func waitForFailure(ctx context.Context, ch <-chan service.SaveFailure) tea.Cmd {
	return func() tea.Msg {
		select {
		case failure, ok := <-ch:
			if !ok {
				return nil
			}
			return saveFailedMsg(failure)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case saveFailedMsg:
		m.notice = notice{text: fmt.Sprintf("Failed to save data: %v", msg.Err), isErr: true}
		return m, waitForFailure(m.ctx, m.accounts.Failures())

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg), nil
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur, hasCurrent := m.accounts.GetCurrentAccount()
	m.notice = notice{}

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "a":
		acc := m.accounts.CreateAccount("")
		m.notice = notice{text: fmt.Sprintf("Added %s", acc.Name)}

	case "up", "k":
		if hasCurrent {
			m.accounts.Increment(cur.ID)
		}

	case "down", "j":
		if hasCurrent {
			m.accounts.Decrement(cur.ID)
		}

	case "right", "l", "tab":
		m.cycle(1)

	case "left", "h", "shift+tab":
		m.cycle(-1)

	case "r":
		if hasCurrent {
			m.accounts.ResetCount(cur.ID)
			m.notice = notice{text: "Transaction count reset to zero"}
		}

	case "n":
		return m.startEdit(fieldName, cur, hasCurrent)
	case "m":
		return m.startEdit(fieldAmount, cur, hasCurrent)
	case "x":
		return m.startEdit(fieldMultiplier, cur, hasCurrent)

	case "d":
		if hasCurrent {
			m.mode = modeConfirmDelete
		}

	case "s":
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := m.accounts.Save(ctx); err != nil {
			m.notice = notice{text: err.Error(), isErr: true}
		} else {
			m.notice = notice{text: "Saved"}
		}

	default:
		if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			accs := m.accounts.GetAllAccounts()
			if pos := int(r[0] - '1'); pos < len(accs) {
				m.accounts.SelectAccount(accs[pos].ID)
			}
		}
	}

	return m, nil
}

func (m Model) startEdit(f field, cur model.Account, ok bool) (tea.Model, tea.Cmd) {
	if !ok {
		return m, nil
	}

	m.mode = modeEdit
	m.field = f
	switch f {
	case fieldName:
		m.input.SetValue(cur.Name)
	case fieldAmount:
		m.input.SetValue(formatNumber(cur.TransactionAmount))
	case fieldMultiplier:
		m.input.SetValue(formatNumber(cur.TransactionMultiplier))
	}
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endEdit()
		return m, nil

	case tea.KeyEnter:
		m.commitEdit()
		m.endEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitEdit() {
	cur, ok := m.accounts.GetCurrentAccount()
	if !ok {
		return
	}

	raw := m.input.Value()
	var res validation.Result

	switch m.field {
	case fieldName:
		m.accounts.RenameAccount(cur.ID, raw)
		return
	case fieldAmount:
		res, _ = m.accounts.SetAmount(cur.ID, raw)
	case fieldMultiplier:
		res, _ = m.accounts.SetMultiplier(cur.ID, raw)
	}

	if res.Warning != "" {
		m.notice = notice{text: fmt.Sprintf("%s: %s", m.field, res.Warning), isErr: true}
	}
}

func (m *Model) endEdit() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y", "enter":
		if cur, ok := m.accounts.GetCurrentAccount(); ok {
			m.accounts.DeleteAccount(cur.ID)
			m.notice = notice{text: fmt.Sprintf("Deleted %s", cur.Name)}
		}
		m.mode = modeBrowse
	case "n", "N", "esc", "q":
		m.mode = modeBrowse
	}
	return m
}

// cycle moves the selection by step, wrapping around.
func (m *Model) cycle(step int) {
	accs := m.accounts.GetAllAccounts()
	if len(accs) == 0 {
		return
	}

	cur, _ := m.accounts.GetCurrentAccount()
	idx := 0
	for i, acc := range accs {
		if acc.ID == cur.ID {
			idx = i
			break
		}
	}

	next := (idx + step + len(accs)) % len(accs)
	m.accounts.SelectAccount(accs[next].ID)
}

// Run starts the counter on the terminal and blocks until the user quits.
// The failure listener is stopped before Run returns.
func Run(accounts Accounts, precision int32) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := tea.NewProgram(New(ctx, accounts, precision), tea.WithAltScreen()).Run()
	return err
}
