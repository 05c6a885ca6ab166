package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logMaxEntries  = 64
	logLineHeight  = 14
	logPanelWidth  = 300
	logPanelLines  = 5 // entries drawn on screen
	logPanelMargin = 8
)

// Event categories.
const (
	CatUI     = "ui"
	CatSeeker = "seeker"
	CatJammer = "jammer"
	CatSystem = "system"
)

// EventEntry is a single line in the event log.
type EventEntry struct {
	Tick     int
	Category string // ui, seeker, jammer, system
	Key      string // specific event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] ui      jam_toggle   jamming on
func (e EventEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-7s %-12s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog is a ring buffer of simulation events rendered on-screen.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, logMaxEntries)}
}

// Add appends an entry, overwriting the oldest once full.
func (el *EventLog) Add(tick int, category, key, value string) {
	el.entries[el.head] = EventEntry{Tick: tick, Category: category, Key: key, Value: value}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Len returns the number of stored entries.
func (el *EventLog) Len() int {
	return el.count
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []EventEntry {
	var out []EventEntry
	for _, e := range el.Recent() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// Format returns the stored log as one line per entry.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.Recent() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Draw renders the newest entries in a panel at the bottom-left corner.
func (el *EventLog) Draw(screen *ebiten.Image, screenH int) {
	entries := el.Recent()
	if len(entries) == 0 {
		return
	}
	if len(entries) > logPanelLines {
		entries = entries[len(entries)-logPanelLines:]
	}

	x := float32(logPanelMargin)
	h := float32(len(entries)*logLineHeight + 6)
	y := float32(screenH-logPanelMargin) - h
	vector.FillRect(screen, x, y, logPanelWidth, h, color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, x, y, logPanelWidth, h, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	ty := int(y) + 3
	for _, e := range entries {
		line := fmt.Sprintf("%4d %s", e.Tick, e.Value)
		ebitenutil.DebugPrintAt(screen, line, int(x)+6, ty)
		ty += logLineHeight
	}
}
