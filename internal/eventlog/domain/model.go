package domain

// Endpoint identifies the capability on one side of an event.
type Endpoint struct {
	Capability string `json:"capability"`
}

// Stamp carries the event time in seconds.
type Stamp struct {
	Secs float64 `json:"secs"`
}

type Header struct {
	Stamp Stamp `json:"stamp"`
}

// Event is one record from an uploaded robot log. Any absent field means
// "not provided", never malformed input.
type Event struct {
	Source *Endpoint `json:"source,omitempty"`
	Target *Endpoint `json:"target,omitempty"`
	Topic  string    `json:"topic,omitempty"`
	Text   string    `json:"text,omitempty"`
	Event  int       `json:"event,omitempty"`
	Header *Header   `json:"header,omitempty"`
}

// SourceID returns the emitting capability id, or "" when not provided.
func (e Event) SourceID() string {
	if e.Source == nil {
		return ""
	}
	return e.Source.Capability
}

// TargetID returns the receiving capability id, or "" when not provided.
func (e Event) TargetID() string {
	if e.Target == nil {
		return ""
	}
	return e.Target.Capability
}

// HasEdge reports whether the event carries both endpoints and therefore
// contributes an edge to the graph.
func (e Event) HasEdge() bool {
	return e.SourceID() != "" && e.TargetID() != ""
}

// Timestamp returns the event time in seconds, 0 when no header is present.
func (e Event) Timestamp() float64 {
	if e.Header == nil {
		return 0
	}
	return e.Header.Stamp.Secs
}

// RegisteredNode is per-node display metadata supplied with the upload.
type RegisteredNode struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IsCapability bool   `json:"is_capability"`
}

// NodeRegistry is the optional node_paths section of a document. Nodes listed
// here are pre-registered in the graph even if they never appear in an edge.
type NodeRegistry struct {
	CapabilityCount int              `json:"capability_count"`
	Nodes           []RegisteredNode `json:"nodes"`
}

// Document is the top-level parsed unit of an uploaded log file. Event order
// is file order and is semantically meaningful: later duplicate edges between
// the same pair overwrite earlier label/style choices.
type Document struct {
	Events    []Event       `json:"events"`
	NodePaths *NodeRegistry `json:"node_paths,omitempty"`
}

type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Role  NodeRole `json:"role"`
}

type Edge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Label string  `json:"label"`
	Kind  string  `json:"kind"`
	Color string  `json:"color"`
	Title string  `json:"title"`
	Time  float64 `json:"time"`
}

// Graph is the directed interaction graph derived from a Document. It is a
// pure function of the document: rebuilt on every request, never persisted.
// Order preserves node insertion order so iteration stays deterministic.
type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	Order []string         `json:"-"`
	Edges []*Edge          `json:"edges"`
	// adjacency for algorithms
	Out map[string][]*Edge `json:"-"`
	In  map[string][]*Edge `json:"-"`

	edgeByPair map[[2]string]*Edge
}

func NewGraph() *Graph {
	return &Graph{
		Nodes:      map[string]*Node{},
		Edges:      []*Edge{},
		Out:        map[string][]*Edge{},
		In:         map[string][]*Edge{},
		edgeByPair: map[[2]string]*Edge{},
	}
}

// AddNode registers a node. Re-adding an existing id is a no-op, so the first
// registration (e.g. from supplied metadata) wins.
func (g *Graph) AddNode(n *Node) {
	if _, ok := g.Nodes[n.ID]; !ok {
		g.Nodes[n.ID] = n
		g.Order = append(g.Order, n.ID)
	}
}

// AddEdge creates the directed edge (From, To) or, when the pair already
// exists, overwrites its label and style in place. Duplicate pairs are never
// kept as parallel edges; the edge retains its original position.
func (g *Graph) AddEdge(e *Edge) {
	key := [2]string{e.From, e.To}
	if prev, ok := g.edgeByPair[key]; ok {
		prev.Label = e.Label
		prev.Kind = e.Kind
		prev.Color = e.Color
		prev.Title = e.Title
		prev.Time = e.Time
		return
	}
	g.Edges = append(g.Edges, e)
	g.Out[e.From] = append(g.Out[e.From], e)
	g.In[e.To] = append(g.In[e.To], e)
	g.edgeByPair[key] = e
}

// HasNode reports whether id is a valid node identifier in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Nodes[id]
	return ok
}

// Path is an ordered node id sequence; consecutive entries are connected by a
// stored edge. An empty path means "no path", which callers must distinguish
// from the degenerate single-node path.
type Path []string

// Hops is the edge count of the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
