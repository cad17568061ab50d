// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package tui renders a scrollable dashboard of section durations —
// time_stopped_recording minus time_started_recording — information the
// decoded object model already carries but that the CSV/JSON exporters
// never surface to a human at a glance.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suzumenobu/xcactivitylog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	durStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))
	rowStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// row is one flattened entry in the dashboard: a section's title and
// its wall-clock duration.
type row struct {
	title    string
	duration float64
	depth    int
}

// Model is the bubbletea model backing the section-duration dashboard.
type Model struct {
	rows    []row
	cursor  int
	height  int
	width   int
}

// NewModel flattens every BuildLog/Section/CommandInvocationSection
// decoded from objs into rows, depth-first, the same order sub_sections
// appear in the stream.
func NewModel(objs []xcactivitylog.Object) *Model {
	m := &Model{}
	for _, obj := range objs {
		m.collect(obj, 0)
	}
	return m
}

func (m *Model) collect(obj xcactivitylog.Object, depth int) {
	switch v := obj.(type) {
	case *xcactivitylog.BuildLog:
		m.rows = append(m.rows, row{title: v.Title, duration: v.TimeStoppedRecording - v.TimeStartedRecording, depth: depth})
		for _, s := range v.SubSections {
			m.collect(s, depth+1)
		}
	case *xcactivitylog.Section:
		m.rows = append(m.rows, row{title: v.Title, duration: v.TimeStoppedRecording - v.TimeStartedRecording, depth: depth})
		for _, s := range v.SubSections {
			m.collect(s, depth+1)
		}
	case *xcactivitylog.CommandInvocationSection:
		m.rows = append(m.rows, row{title: v.Title, duration: v.TimeStoppedRecording - v.TimeStartedRecording, depth: depth})
		for _, s := range v.SubSections {
			m.collect(s, depth+1)
		}
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("section durations") + "\n")
	b.WriteString(strings.Repeat("─", max(m.width, 20)) + "\n")

	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		indent := strings.Repeat("  ", r.depth)
		line := fmt.Sprintf("%s%s%s %s", cursor, indent, titleStyle.Render(r.title), durStyle.Render(fmt.Sprintf("%.3fs", r.duration)))
		b.WriteString(rowStyle.Render(line) + "\n")
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Run starts the dashboard program and blocks until the user quits.
func Run(objs []xcactivitylog.Object) error {
	program := tea.NewProgram(NewModel(objs), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
