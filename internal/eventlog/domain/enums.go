package domain

type NodeRole string

const (
	RoleCapability NodeRole = "capability"
	RoleMessage    NodeRole = "message"
)

// Event type codes as they appear on the wire.
const (
	EventInfo    = 0
	EventStart   = 1
	EventEnd     = 2
	EventError   = 3
	EventSuccess = 4
)

// Classification is the display category resolved from an event type code.
type Classification struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var eventTable = map[int]Classification{
	EventInfo:    {Label: "Info", Color: "#3498db"},
	EventStart:   {Label: "Start", Color: "#2ecc71"},
	EventEnd:     {Label: "End", Color: "#e74c3c"},
	EventError:   {Label: "Error", Color: "#f39c12"},
	EventSuccess: {Label: "Success", Color: "#9b59b6"},
}

// DefaultClassification is used for codes outside the closed table.
var DefaultClassification = Classification{Label: "Unknown", Color: "#7f7f7f"}

// Classify maps an event type code to its display category. Unrecognized
// codes fall back to the neutral default, never an error.
func Classify(code int) Classification {
	if c, ok := eventTable[code]; ok {
		return c
	}
	return DefaultClassification
}

// Display colors for node roles.
const (
	ColorCapability = "#e74c3c"
	ColorMessage    = "#3498db"
)

// RoleColor returns the display color for a node role.
func RoleColor(r NodeRole) string {
	if r == RoleMessage {
		return ColorMessage
	}
	return ColorCapability
}
