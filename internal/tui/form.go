// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputForm is a column of labelled text inputs with tab focus cycling. The
// login, sign-up and recipe screens share it.
type inputForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newInputForm(labels []string, inputs []textinput.Model) inputForm {
	f := inputForm{labels: labels, inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *inputForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f *inputForm) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *inputForm) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *inputForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *inputForm) render(b *strings.Builder) {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}
	for i, in := range f.inputs {
		fmt.Fprintf(b, "%-*s │ [%s]\n", width, f.labels[i], in.View())
	}
}
