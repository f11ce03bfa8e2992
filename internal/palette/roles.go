package palette

// Role identifies one of the twelve fixed slots of a palette.
type Role string

// Palette roles, in canonical order.
const (
	RolePrimary            Role = "primary"
	RoleSecondary          Role = "secondary"
	RoleBackground         Role = "background"
	RoleAccent             Role = "accent"
	RoleAnalogous1         Role = "analogous1"
	RoleAnalogous2         Role = "analogous2"
	RoleTriadic1           Role = "triadic1"
	RoleTriadic2           Role = "triadic2"
	RoleMonochromaticLight Role = "monochromatic-light"
	RoleMonochromaticDark  Role = "monochromatic-dark"
	RoleTextPrimary        Role = "text-primary"
	RoleTextSecondary      Role = "text-secondary"
)

// roleOrder lists every role once, in canonical order.
var roleOrder = [RoleCount]Role{
	RolePrimary,
	RoleSecondary,
	RoleBackground,
	RoleAccent,
	RoleAnalogous1,
	RoleAnalogous2,
	RoleTriadic1,
	RoleTriadic2,
	RoleMonochromaticLight,
	RoleMonochromaticDark,
	RoleTextPrimary,
	RoleTextSecondary,
}

// RoleCount is the number of roles in every palette.
const RoleCount = 12

// roleInfo is the display name and usage hint of a role.
type roleInfo struct {
	name  string
	usage string
}

var roleInfos = map[Role]roleInfo{
	RolePrimary:            {"Primary", "Main actions, headers, primary buttons"},
	RoleSecondary:          {"Secondary", "Secondary buttons, less important links"},
	RoleBackground:         {"Background", "Main background, provides contrast"},
	RoleAccent:             {"Accent", "CTAs, important actions, highlights"},
	RoleAnalogous1:         {"Analogous 1", "Harmonious neighbor color"},
	RoleAnalogous2:         {"Analogous 2", "Harmonious neighbor color"},
	RoleTriadic1:           {"Triadic 1", "Balanced triad color"},
	RoleTriadic2:           {"Triadic 2", "Balanced triad color"},
	RoleMonochromaticLight: {"Light Variant", "Lighter variation for backgrounds"},
	RoleMonochromaticDark:  {"Dark Variant", "Darker variation for emphasis"},
	RoleTextPrimary:        {"Text Primary", "Main text color"},
	RoleTextSecondary:      {"Text Secondary", "Secondary text color"},
}

// AllRoles returns every role in canonical order.
func AllRoles() []Role {
	out := make([]Role, RoleCount)
	copy(out, roleOrder[:])
	return out
}

// Name returns the display name of the role.
func (r Role) Name() string {
	return roleInfos[r].name
}

// Usage returns the fixed usage description of the role.
func (r Role) Usage() string {
	return roleInfos[r].usage
}

// Valid reports whether r is one of the twelve palette roles.
func (r Role) Valid() bool {
	_, ok := roleInfos[r]
	return ok
}
