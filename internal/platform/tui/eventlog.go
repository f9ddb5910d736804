package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/camelrace/internal/core"
)

const maxLogEntries = 200

// eventLevels overrides the log level for event kinds that are not routine.
var eventLevels = map[string]log.Level{
	"config error":   log.WarnLevel,
	"marker skipped": log.WarnLevel,
	"marker refused": log.DebugLevel,
	"camel nudged":   log.DebugLevel,
}

// logEvent writes ev to logger tagged with the race ID.
func logEvent(logger *log.Logger, raceID string, ev core.Event) {
	level, ok := eventLevels[ev.Kind]
	if !ok {
		level = log.InfoLevel
	}
	keyvals := make([]any, 0, len(ev.Attrs)+2)
	keyvals = append(keyvals, "race", raceID)
	keyvals = append(keyvals, ev.Attrs...)
	logger.Log(level, ev.Kind, keyvals...)
}

// formatAttrs renders alternating key/value pairs as "k=v k=v".
func formatAttrs(attrs []any) string {
	parts := make([]string, 0, len(attrs)/2+1)
	for i := 0; i < len(attrs); i += 2 {
		if i+1 >= len(attrs) {
			parts = append(parts, fmt.Sprint(attrs[i]))
			break
		}
		parts = append(parts, fmt.Sprintf("%v=%v", attrs[i], attrs[i+1]))
	}
	return strings.Join(parts, " ")
}

// LogEntry is one row of the in-session event log.
type LogEntry struct {
	Tick    uint64
	Leg     int
	Kind    string
	Details string
}

// EventLog is a scrollable table of the events seen in this session.
type EventLog struct {
	entries []LogEntry
	table   table.Model
	width   int
	height  int
}

// NewEventLog creates an empty log sized for the terminal.
func NewEventLog(width, height int) EventLog {
	l := EventLog{width: width, height: height}
	l.table = l.createTable()
	return l
}

// createTable creates a new table with columns fitted to the width.
func (l *EventLog) createTable() table.Model {
	columns := []table.Column{
		{Title: "Tick", Width: 7},
		{Title: "Leg", Width: 4},
		{Title: "Event", Width: 15},
		{Title: "Details", Width: 30},
	}

	// Borders, padding and column gaps.
	if rest := l.width - 8 - 7 - 4 - 15 - 8; rest > columns[3].Width {
		columns[3].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(l.height-6, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Append records events raised at tick during leg.
func (l *EventLog) Append(tick uint64, leg int, events []core.Event) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		l.entries = append(l.entries, LogEntry{
			Tick:    tick,
			Leg:     leg,
			Kind:    ev.Kind,
			Details: formatAttrs(ev.Attrs),
		})
	}
	if over := len(l.entries) - maxLogEntries; over > 0 {
		l.entries = l.entries[over:]
	}
	l.updateRows()
}

// Entries returns the recorded entries, oldest first.
func (l EventLog) Entries() []LogEntry {
	return l.entries
}

// Resize refits the table to a new terminal size.
func (l *EventLog) Resize(width, height int) {
	l.width = width
	l.height = height
	l.table = l.createTable()
	l.updateRows()
}

// updateRows refreshes the table and keeps the newest entry in view.
func (l *EventLog) updateRows() {
	rows := make([]table.Row, len(l.entries))
	for i, e := range l.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Tick),
			fmt.Sprintf("%d", e.Leg),
			e.Kind,
			e.Details,
		}
	}
	l.table.SetRows(rows)
	l.table.GotoBottom()
}

// Scroll moves the selection by delta rows.
func (l *EventLog) Scroll(delta int) {
	if delta < 0 {
		l.table.MoveUp(-delta)
	} else {
		l.table.MoveDown(delta)
	}
}

// View renders the log or an empty message.
func (l EventLog) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("EVENT LOG"))
	b.WriteString("\n")

	if len(l.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("Nothing has happened yet.\nRoll a die to get the race going!")))
		return b.String()
	}

	b.WriteString(boxStyle.Render(l.table.View()))
	return b.String()
}
