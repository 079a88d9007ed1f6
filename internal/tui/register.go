package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/models"
)

type registerDoneMsg struct {
	username string
	err      error
}

// RegisterModel is the Bubble Tea model for the registration screen: three
// text inputs (username, email, password) plus a role selector toggled with
// the left/right keys. Registration does not log the account in; on success
// the user is returned to the menu with a confirmation notice.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	roleIdx    int
	submitting bool
	errMsg     string
}

var roleOptions = []models.Role{models.RoleUser, models.RoleAuthor}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	username := newFormInput("username", 50)
	username.Focus()

	email := newFormInput("email", 254)

	password := newFormInput("password", 256)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{username, email, password},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update reacts to registerDoneMsg (back to the menu with a notice on
// success), esc (cancel), tab/shift+tab (focus movement), left/right (role
// toggle), and enter (validate and submit). Everything else goes to the
// focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(registerDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errMsg = done.err.Error()
			return m, nil
		}

		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: RegisterSuccessNotice{Username: done.username}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "left", "right":
			m.roleIdx = (m.roleIdx + 1) % len(roleOptions)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			if username == "" || email == "" || pass == "" {
				m.errMsg = "username, email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, email, pass, roleOptions[m.roleIdx])
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Username [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email    [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	b.WriteString("Role     ")
	for i, role := range roleOptions {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.roleIdx {
			b.WriteString("(x) ")
		} else {
			b.WriteString("( ) ")
		}
		b.WriteString(string(role))
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ←/→: role │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, email, pass string, role models.Role) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, username, email, pass, role)
		if err != nil {
			return registerDoneMsg{err: err}
		}

		return registerDoneMsg{username: user.Username}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focus = 0
	m.roleIdx = 0
	m.submitting = false
	m.errMsg = ""

	m.inputs[0].Focus()
	for i := 1; i < len(m.inputs); i++ {
		m.inputs[i].Blur()
	}
}
