package config

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme roles.
const (
	RoleNormal    = "normal"
	RoleKeyword   = "keyword"
	RoleString    = "string"
	RoleComment   = "comment"
	RoleNumber    = "number"
	RoleDelimiter = "delimiter"
	RoleBuiltin   = "builtin"
)

// Roles lists every theme role.
var Roles = []string{RoleNormal, RoleKeyword, RoleString, RoleComment, RoleNumber, RoleDelimiter, RoleBuiltin}

// Theme maps a role to a hex color such as "#c678dd".
type Theme map[string]string

// DefaultTheme follows the classic eight-color Lisp palette.
func DefaultTheme() Theme {
	return Theme{
		RoleNormal:    "#d0d0d0",
		RoleKeyword:   "#c678dd",
		RoleString:    "#98c379",
		RoleComment:   "#56b6c2",
		RoleNumber:    "#e5c07b",
		RoleDelimiter: "#61afef",
		RoleBuiltin:   "#e06c75",
	}
}

// Color returns the parsed color for role, falling back to the default
// palette and then to the normal color.
func (t Theme) Color(role string) colorful.Color {
	if c, err := colorful.Hex(t[role]); err == nil {
		return c
	}
	def := DefaultTheme()
	if c, err := colorful.Hex(def[role]); err == nil {
		return c
	}
	c, _ := colorful.Hex(def[RoleNormal])
	return c
}

func (t Theme) validate() []error {
	roles := make([]string, 0, len(t))
	for role := range t {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	known := make(map[string]bool, len(Roles))
	for _, r := range Roles {
		known[r] = true
	}

	var errs []error
	for _, role := range roles {
		if !known[role] {
			errs = append(errs, &ValidationError{Path: "theme." + role, Message: "unknown role", Value: t[role]})
			continue
		}
		if _, err := colorful.Hex(t[role]); err != nil {
			errs = append(errs, &ValidationError{Path: "theme." + role, Message: "must be a #rrggbb color", Value: t[role]})
		}
	}
	return errs
}
