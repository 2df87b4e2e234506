package purepath

import "strings"

// Component is a bit flag selecting structural pieces of a path.
type Component uint8

const (
	ComponentDrive Component = 1 << iota
	ComponentRoot
	ComponentDirname
	ComponentBasename
	ComponentExtension
)

// componentOrder fixes the concatenation order for GetComponents.
var componentOrder = []Component{
	ComponentDrive,
	ComponentRoot,
	ComponentDirname,
	ComponentBasename,
	ComponentExtension,
}

func (p PurePath) component(c Component) string {
	switch c {
	case ComponentDrive:
		return p.drive
	case ComponentRoot:
		return p.root
	case ComponentDirname:
		return p.Dirname()
	case ComponentBasename:
		return p.Basename()
	case ComponentExtension:
		return p.Extension()
	}
	return ""
}

// HasComponents reports whether every requested component is non-empty.
func (p PurePath) HasComponents(flags Component) bool {
	for _, c := range componentOrder {
		if flags&c != 0 && p.component(c) == "" {
			return false
		}
	}
	return true
}

// GetComponents concatenates the requested components that are present,
// in drive, root, dirname, basename, extension order, inserting no
// separators beyond those the components themselves carry.
func (p PurePath) GetComponents(flags Component) string {
	var b strings.Builder
	for _, c := range componentOrder {
		if flags&c != 0 {
			b.WriteString(p.component(c))
		}
	}
	return b.String()
}
