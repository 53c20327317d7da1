package menu

import (
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	cfg "github.com/automoto/starlancer/config"
	"github.com/lafriks/go-tiled"
)

// LoadLayout builds a page from the object group named group in a Tiled map.
// The page takes the group's name and the map's pixel size as its design
// resolution. Objects become nodes in file order; an object's "parent"
// property names an earlier node to attach to, otherwise it hangs off the
// page.
//
// Object types: image (texture, tint), text (text, font, pitch, highlight),
// button (label, font, pitch) and group. Any object may set "hidden".
func (m *Manager) LoadLayout(fsys fs.FS, tmxPath, group string) (*Node, error) {
	layoutMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", tmxPath, err)
	}

	var og *tiled.ObjectGroup
	for _, g := range layoutMap.ObjectGroups {
		if g.Name == group {
			og = g
			break
		}
	}
	if og == nil {
		return nil, fmt.Errorf("layout %s has no object group %q", tmxPath, group)
	}

	width := float64(layoutMap.Width * layoutMap.TileWidth)
	height := float64(layoutMap.Height * layoutMap.TileHeight)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("layout %s has no size", tmxPath)
	}

	// Validate every object before touching the manager so a bad file
	// leaves no half-built page behind.
	kinds := make([]Kind, len(og.Objects))
	for i, o := range og.Objects {
		k, err := objectKind(o)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", tmxPath, err)
		}
		kinds[i] = k
	}
	if err := checkParents(og.Objects); err != nil {
		return nil, fmt.Errorf("layout %s: %w", tmxPath, err)
	}

	root := m.AddMenu(group, width, height)
	for i, o := range og.Objects {
		parent := root
		if p := o.Properties.GetString("parent"); p != "" {
			parent = root.Find(p)
		}

		n := m.AddNode(parent, kinds[i], o.Name)
		n.SetBounds(o.X, o.Y, o.Width, o.Height)
		n.Hidden = o.Properties.GetBool("hidden")
		applyProperties(n, o.Properties)
	}
	return root, nil
}

func objectKind(o *tiled.Object) (Kind, error) {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	switch class {
	case "image":
		return KindImage, nil
	case "text":
		return KindText, nil
	case "button":
		return KindButton, nil
	case "group", "":
		return KindGroup, nil
	}
	return 0, fmt.Errorf("object %q has unknown type %q", o.Name, class)
}

func checkParents(objects []*tiled.Object) error {
	seen := make(map[string]bool, len(objects))
	for _, o := range objects {
		if p := o.Properties.GetString("parent"); p != "" && !seen[p] {
			return fmt.Errorf("object %q names parent %q before it is defined", o.Name, p)
		}
		seen[o.Name] = true
	}
	return nil
}

func applyProperties(n *Node, props tiled.Properties) {
	switch n.Kind {
	case KindImage:
		n.Texture = props.GetString("texture")
		n.Tint = cfg.White
		if hex := props.GetString("tint"); hex != "" {
			if c, ok := parseHexColor(hex); ok {
				n.Tint = c
			}
		}

	case KindText:
		pitch := props.GetInt("pitch")
		if pitch == 0 {
			pitch = cfg.Menu.ButtonPitch
		}
		clr := cfg.Menu.TextColorNormal
		if props.GetBool("highlight") {
			clr = cfg.Menu.TitleColor
		}
		n.SetText(props.GetString("text"), fontOr(props, cfg.Menu.ButtonFont), pitch, clr)

	case KindButton:
		pitch := props.GetInt("pitch")
		if pitch == 0 {
			pitch = cfg.Menu.ButtonPitch
		}
		n.SetText("", fontOr(props, cfg.Menu.ButtonFont), pitch, cfg.Menu.TextColorNormal)
		n.Label = props.GetString("label")
		n.IdleColor = cfg.Menu.ButtonIdle
		n.HoverColor = cfg.Menu.ButtonHover
		n.PressedColor = cfg.Menu.ButtonPressed
	}
}

func fontOr(props tiled.Properties, def string) string {
	if f := props.GetString("font"); f != "" {
		return f
	}
	return def
}

// parseHexColor accepts #rrggbb and #aarrggbb, the forms Tiled writes.
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	switch len(s) {
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	case 8:
		return color.RGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}
	return color.RGBA{}, false
}
