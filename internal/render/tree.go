// Package render produces the read-only terminal view of an entry and its
// followup tree.
package render

import (
	"fmt"
	"sort"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lablog-io/lablog/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
	authorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "45"})
	attrNameStyle = lipgloss.NewStyle().Bold(true)
	followupStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "136", Dark: "220"})
)

const indentStep = 2

// Renderer renders entries for a fixed terminal width.
type Renderer struct {
	conv  *md.Converter
	width int
}

// New creates a renderer. Width bounds wrapping of converted HTML content.
func New(width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{
		conv:  md.NewConverter("", true, nil),
		width: width,
	}
}

// Entry renders an entry and all its followups depth-first, in server
// order. Repeated ids are skipped: the backend's tree is expected to be
// acyclic, but a guard is cheaper than an infinite recursion.
func (r *Renderer) Entry(lb *models.Logbook, e *models.Entry) string {
	var b strings.Builder
	if lb != nil {
		b.WriteString(titleStyle.Render(lb.Name))
		b.WriteString("\n\n")
	}
	visited := make(map[int64]bool)
	r.node(&b, lb, e, 0, -1, visited)
	return b.String()
}

func (r *Renderer) node(b *strings.Builder, lb *models.Logbook, e *models.Entry, depth, followupNumber int, visited map[int64]bool) {
	if visited[e.ID] {
		return
	}
	visited[e.ID] = true

	pad := strings.Repeat(" ", depth*indentStep)

	header := titleStyle.Render(e.Title)
	if followupNumber >= 0 {
		header = followupStyle.Render(fmt.Sprintf("#%d ", followupNumber+1)) + header
	}
	b.WriteString(pad + header + "\n")

	meta := e.CreatedAt
	if e.LastChangedAt != "" {
		meta += "  (changed " + e.LastChangedAt + ")"
	}
	if meta != "" {
		b.WriteString(pad + metaStyle.Render(meta) + "\n")
	}
	if len(e.Authors) > 0 {
		b.WriteString(pad + authorStyle.Render(strings.Join(e.Authors, ", ")) + "\n")
	}

	r.attributes(b, lb, e, pad)

	if content := r.content(e); content != "" {
		wrapped := ansi.Wordwrap(content, max(r.width-len(pad), 20), "-")
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString(pad + line + "\n")
		}
	}

	for _, a := range e.VisibleAttachments() {
		b.WriteString(pad + metaStyle.Render("@ "+a.Filename) + "\n")
	}

	for i := range e.Followups {
		b.WriteString("\n")
		r.node(b, lb, &e.Followups[i], depth+1, i, visited)
	}
}

// attributes lists the entry's attribute values in schema order, followed
// by any values whose definition no longer exists.
func (r *Renderer) attributes(b *strings.Builder, lb *models.Logbook, e *models.Entry, pad string) {
	if len(e.Attributes) == 0 {
		return
	}

	printed := make(map[string]bool)
	if lb != nil {
		for _, def := range lb.Attributes {
			if v, ok := e.Attributes[def.Name]; ok {
				b.WriteString(pad + attrNameStyle.Render(def.Name+": ") + formatValue(v) + "\n")
				printed[def.Name] = true
			}
		}
	}
	orphans := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		if !printed[name] {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)
	for _, name := range orphans {
		b.WriteString(pad + attrNameStyle.Render(name+": ") + formatValue(e.Attributes[name]) + "\n")
	}
}

func (r *Renderer) content(e *models.Entry) string {
	if e.Content == "" {
		return ""
	}
	if e.IsHTML() {
		converted, err := r.conv.ConvertString(e.Content)
		if err != nil {
			// Fall back to the raw HTML rather than dropping content.
			return strings.TrimSpace(e.Content)
		}
		return strings.TrimSpace(converted)
	}
	return strings.TrimSpace(e.Content)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case []any:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// Flatten returns the entry and its followups in depth-first order,
// guarding against repeated ids.
func Flatten(e *models.Entry) []*models.Entry {
	var out []*models.Entry
	visited := make(map[int64]bool)
	var walk func(*models.Entry)
	walk = func(n *models.Entry) {
		if visited[n.ID] {
			return
		}
		visited[n.ID] = true
		out = append(out, n)
		for i := range n.Followups {
			walk(&n.Followups[i])
		}
	}
	walk(e)
	return out
}
