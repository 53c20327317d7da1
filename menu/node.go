// Package menu holds the menu node forest: pages of images, text and buttons
// laid out in a design resolution and scaled to the screen at render time.
package menu

import (
	"image/color"

	"github.com/automoto/starlancer/contract"
	"github.com/tanema/gween"
)

// NodeID identifies a node for the lifetime of its Manager. Zero is never
// assigned.
type NodeID uint32

// Kind selects how a node draws and reacts to input.
type Kind int

const (
	// KindPage is a root node: a named menu with a design resolution.
	KindPage Kind = iota
	KindImage
	KindText
	KindButton
	// KindGroup only positions its children.
	KindGroup
)

var kindNames = [...]string{"page", "image", "text", "button", "group"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node is one element of a menu tree. Position and size are local to the
// parent, in the design resolution of the owning page.
type Node struct {
	id   NodeID
	Name string
	Kind Kind

	X, Y          float64
	Width, Height float64
	Hidden        bool

	// Image
	Texture string
	Tint    color.RGBA

	// Text. Buttons use Font and Pitch for their label.
	Text  string
	Font  string
	Pitch int
	Color color.RGBA

	// Button
	Label        string
	IdleColor    color.RGBA
	HoverColor   color.RGBA
	PressedColor color.RGBA
	// Focused draws the button as hovered, for keyboard and gamepad navigation.
	Focused bool

	hovered bool
	pressed bool
	pulse   *gween.Tween
	scale   float32

	parent   *Node
	children []*Node
}

// ID returns the node's identity.
func (n *Node) ID() NodeID {
	return n.id
}

// Parent returns the owning node, or nil for pages and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the owned children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Hovered reports whether the pointer was over the button on the last render.
func (n *Node) Hovered() bool {
	return n.hovered
}

// AddChild appends child to n. Pages cannot be children and a node can only
// have one parent.
func (n *Node) AddChild(child *Node) {
	contract.Assert(child != nil, "AddChild(nil) on %q", n.Name)
	contract.Assert(child.Kind != KindPage, "page %q cannot be a child of %q", child.Name, n.Name)
	contract.Assert(child.parent == nil, "node %q already belongs to %q", child.Name, parentName(child))
	for p := n; p != nil; p = p.parent {
		contract.Assert(p != child, "adding %q under %q would create a cycle", child.Name, n.Name)
	}

	child.parent = n
	n.children = append(n.children, child)
}

// Find returns the first node named name in n's subtree, searching n first
// and then each child depth first in insertion order.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// SetText configures a text node or a button label face.
func (n *Node) SetText(text, font string, pitch int, clr color.RGBA) *Node {
	n.Text = text
	n.Font = font
	n.Pitch = pitch
	n.Color = clr
	return n
}

// SetBounds sets the local position and size.
func (n *Node) SetBounds(x, y, w, h float64) *Node {
	n.X, n.Y, n.Width, n.Height = x, y, w, h
	return n
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

func (n *Node) names() []string {
	var names []string
	n.walk(func(c *Node) {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	})
	return names
}

func parentName(n *Node) string {
	if n.parent == nil {
		return ""
	}
	return n.parent.Name
}
