package menu

import (
	"log"
	"path/filepath"

	"github.com/automoto/starlancer/contract"
	"github.com/automoto/starlancer/fonts"
	"golang.org/x/image/font"
)

// Manager owns every node it creates, the named pages, the active page
// selection, the font cache and the event handler registry.
type Manager struct {
	// nodes is the arena; nodes[i] has id idBase+i.
	nodes  []*Node
	idBase NodeID
	nextID NodeID

	roots  []*Node
	active *Node

	fonts  *fonts.Cache
	assets TextureProvider
	events registry
}

// NewManager returns an empty manager that loads fonts through fc.
func NewManager(fc *fonts.Cache) *Manager {
	contract.Assert(fc != nil, "menu.NewManager requires a font cache")
	return &Manager{
		idBase: 1,
		nextID: 1,
		fonts:  fc,
		events: newRegistry(),
	}
}

// CreateNode allocates a node of the given kind with the next identity.
func (m *Manager) CreateNode(kind Kind) *Node {
	n := &Node{
		id:    m.nextID,
		Kind:  kind,
		scale: 1,
	}
	m.nextID++
	m.nodes = append(m.nodes, n)
	return n
}

// AddNode creates a named node and appends it to parent.
func (m *Manager) AddNode(parent *Node, kind Kind, name string) *Node {
	contract.Assert(parent != nil, "AddNode %q with nil parent", name)
	n := m.CreateNode(kind)
	n.Name = name
	parent.AddChild(n)
	return n
}

// Node returns the node with the given identity.
func (m *Manager) Node(id NodeID) (*Node, bool) {
	if id < m.idBase || id >= m.nextID {
		return nil, false
	}
	return m.nodes[id-m.idBase], true
}

// AddMenu creates a page with a design resolution of width x height and
// returns it for the caller to populate.
func (m *Manager) AddMenu(name string, width, height float64) *Node {
	contract.Assert(width > 0 && height > 0, "menu %q needs a positive size, got %vx%v", name, width, height)
	root := m.CreateNode(KindPage)
	root.Name = name
	root.Width = width
	root.Height = height
	m.roots = append(m.roots, root)
	return root
}

// Menu returns the first page named name, in creation order.
func (m *Manager) Menu(name string) *Node {
	for _, r := range m.roots {
		if r.Name == name {
			return r
		}
	}
	contract.NotFound("menu", name, m.menuNames())
	return nil
}

// HasMenu reports whether a page named name exists.
func (m *Manager) HasMenu(name string) bool {
	for _, r := range m.roots {
		if r.Name == name {
			return true
		}
	}
	return false
}

// ShowMenu makes the named page the active one, replacing any previous
// selection.
func (m *Manager) ShowMenu(name string) {
	root := m.Menu(name)
	contract.Assert(root.Kind == KindPage, "%q is a %s, not a page", name, root.Kind)
	m.active = root
}

// HideMenu clears the active page.
func (m *Manager) HideMenu() {
	m.active = nil
}

// ActiveMenu returns the active page. Calling it with no active page is a
// contract violation; check HasActiveMenu first.
func (m *Manager) ActiveMenu() *Node {
	contract.Assert(m.active != nil, "no active menu")
	return m.active
}

// HasActiveMenu reports whether a page is active.
func (m *Manager) HasActiveMenu() bool {
	return m.active != nil
}

// FindNode searches the named page's subtree depth first and returns the
// first node named nodeName.
func (m *Manager) FindNode(rootName, nodeName string) *Node {
	root := m.Menu(rootName)
	if n := root.Find(nodeName); n != nil {
		return n
	}
	contract.NotFound("node", rootName+"/"+nodeName, prefixed(rootName, root.names()))
	return nil
}

// NewHandler wraps fn with a fresh identity.
func (m *Manager) NewHandler(fn HandlerFunc) Handler {
	return m.events.newHandler(fn)
}

// AddEventHandler registers h for kind events raised by the node.
func (m *Manager) AddEventHandler(rootName, nodeName string, kind EventKind, h Handler) {
	contract.Assert(h.id != 0 && h.fn != nil, "handler for %s/%s was not created with NewHandler", rootName, nodeName)
	n := m.FindNode(rootName, nodeName)
	m.events.add(eventKey{node: n.id, kind: kind}, h)
}

// RemoveEventHandler unregisters the handler with h's identity. It is a
// contract violation if the handler is not registered for that node and kind.
func (m *Manager) RemoveEventHandler(rootName, nodeName string, kind EventKind, h Handler) {
	n := m.FindNode(rootName, nodeName)
	key := eventKey{node: n.id, kind: kind}
	if m.events.count(key) == 0 {
		contract.Failf("no %s handlers registered on %s/%s", kind, rootName, nodeName)
	}
	if !m.events.remove(key, h.id) {
		contract.Failf("handler %d is not registered for %s on %s/%s", h.id, kind, rootName, nodeName)
	}
}

// HandlerCount returns how many handlers are registered for the node and kind.
func (m *Manager) HandlerCount(n *Node, kind EventKind) int {
	return m.events.count(eventKey{node: n.id, kind: kind})
}

// TriggerEvent calls every handler registered for (n, kind) in registration
// order. Registrations added or removed by a handler apply from the next
// trigger on.
func (m *Manager) TriggerEvent(n *Node, kind EventKind) {
	if n == nil {
		return
	}
	for _, h := range m.events.handlers(eventKey{node: n.id, kind: kind}) {
		h.fn(n, kind)
	}
}

// SetTextureProvider sets the provider whose asset directory prefixes font
// paths in LoadFont.
func (m *Manager) SetTextureProvider(tp TextureProvider) {
	m.assets = tp
}

// LoadFont loads a font file into the cache. When appendDefaultAssetPath is
// set, path is relative to the texture provider's asset directory, or the
// font cache's own base path when no provider is set.
func (m *Manager) LoadFont(path, name string, pitch int, appendDefaultAssetPath bool) bool {
	if appendDefaultAssetPath && m.assets != nil {
		return m.fonts.LoadFile(filepath.Join(m.assets.AssetPath(), path), name, pitch, false)
	}
	return m.fonts.LoadFile(path, name, pitch, appendDefaultAssetPath)
}

// GetFont returns a cached face. The (name, pitch) pair must have been loaded.
func (m *Manager) GetFont(name string, pitch int) font.Face {
	return m.fonts.Get(name, pitch)
}

// Fonts exposes the underlying cache, for embedded fonts.
func (m *Manager) Fonts() *fonts.Cache {
	return m.fonts
}

// Reset releases every node, page, handler registration and font. Node and
// handler identities keep counting from where they were.
func (m *Manager) Reset() {
	log.Printf("[MenuManager] reset: %d nodes, %d menus", len(m.nodes), len(m.roots))
	for _, n := range m.nodes {
		n.parent = nil
		n.children = nil
	}
	m.nodes = nil
	m.idBase = m.nextID
	m.roots = nil
	m.active = nil
	m.events.clear()
	m.fonts.Release()
}

func (m *Manager) menuNames() []string {
	names := make([]string, len(m.roots))
	for i, r := range m.roots {
		names[i] = r.Name
	}
	return names
}

func prefixed(prefix string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + "/" + n
	}
	return out
}
