package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput. NumericOnly drops non-digit keys.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

// NewTextInput returns a focused input limited to maxLen runes.
func NewTextInput(placeholder string, numericOnly bool, maxLen int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && t.NumericOnly {
		if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the trimmed input.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Value())
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
}
