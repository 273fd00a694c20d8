// Package mobilenav renders the small-viewport navigation disclosure.
//
// Each MobileNav owns its own State. Over HTTP the state is carried by the
// widget's own markup: the button posts its current state and instance id,
// the server restores that one instance, toggles it and swaps the fragment.
// Nothing is shared between instances or kept on the server.
package mobilenav

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/nfrund/landing/internal/components/icons"
	"github.com/nfrund/landing/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ToggleRoute is the echo route that activates an instance.
const ToggleRoute = "/nav/mobile/:id/toggle"

// Link is one entry of the panel.
type Link struct {
	Label string
	Href  string
}

var panelLinks = []Link{
	{Label: "Services", Href: "#services"},
	{Label: "About", Href: "#about"},
	{Label: "Work", Href: "#work"},
	{Label: "Contact", Href: "#contact"},
}

// Links returns the fixed panel links in display order.
func Links() []Link {
	out := make([]Link, len(panelLinks))
	copy(out, panelLinks)
	return out
}

// MobileNav is one widget instance.
type MobileNav struct {
	id    string
	state State
}

// New creates a closed instance with a fresh id.
func New() *MobileNav {
	return &MobileNav{id: uuid.NewString()}
}

// Restore rebuilds the instance identified by id in the given state.
func Restore(id string, state State) (*MobileNav, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidWidgetID, id)
	}
	return &MobileNav{id: id, state: state}, nil
}

func (m *MobileNav) ID() string    { return m.id }
func (m *MobileNav) State() State  { return m.state }
func (m *MobileNav) IsOpen() bool  { return m.state == Open }
func (m *MobileNav) Label() string { return m.state.Label() }

// Expanded is the aria-expanded value.
func (m *MobileNav) Expanded() string { return m.state.Expanded() }

// Toggle flips the state. It cannot fail.
func (m *MobileNav) Toggle() { m.state = m.state.Toggle() }

// ElementID is the DOM id of the swappable wrapper.
func (m *MobileNav) ElementID() string { return "mobile-nav-" + m.id }

// PanelID is the DOM id of the link panel.
func (m *MobileNav) PanelID() string { return m.ElementID() + "-panel" }

// ToggleURL is the endpoint the control posts to.
func (m *MobileNav) ToggleURL() string { return "/nav/mobile/" + m.id + "/toggle" }

// Render implements gomponents.Node so an instance can be placed directly in a page tree.
func (m *MobileNav) Render(w io.Writer) error {
	return m.Node().Render(w)
}

// Node builds the markup for the current state.
func (m *MobileNav) Node() g.Node {
	return h.Div(
		h.ID(m.ElementID()),
		h.Class("md:hidden"),
		m.button(),
		g.If(m.IsOpen(), m.panel()),
	)
}

func (m *MobileNav) button() g.Node {
	icon := icons.Menu("w-6 h-6")
	if m.IsOpen() {
		icon = icons.Close("w-6 h-6")
	}
	return h.Button(
		h.Type("button"),
		h.Class("p-2 rounded-lg text-slate-600 dark:text-slate-300 hover:bg-slate-100 dark:hover:bg-slate-800 transition-colors"),
		h.Aria("label", m.Label()),
		h.Aria("expanded", m.Expanded()),
		g.If(m.IsOpen(), h.Aria("controls", m.PanelID())),
		hx.Post(m.ToggleURL()),
		g.Attr("hx-vals", fmt.Sprintf(`{"state":%q}`, m.state.String())),
		hx.Target("#"+m.ElementID()),
		hx.Swap("outerHTML"),
		icon,
	)
}

func (m *MobileNav) panel() g.Node {
	return h.Nav(
		h.ID(m.PanelID()),
		h.Aria("label", "Mobile navigation"),
		h.Class("absolute top-16 left-0 right-0 bg-white dark:bg-slate-900 border-b border-slate-200 dark:border-slate-800 shadow-lg"),
		h.Ul(
			h.Class("flex flex-col px-4 py-4 gap-2"),
			g.Map(panelLinks, func(l Link) g.Node {
				return h.Li(
					h.A(
						h.Href(l.Href),
						h.Class("block px-3 py-2 rounded-lg text-base font-medium text-slate-700 dark:text-slate-200 hover:bg-slate-100 dark:hover:bg-slate-800"),
						g.Text(l.Label),
					),
				)
			}),
		),
	)
}
