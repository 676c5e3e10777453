package hydration

// Stub fields understood by Hydrate. Unknown fields are kept in Placeholder.Stub.
const (
	stubType        = "type"
	stubName        = "name"
	stubInspectable = "inspectable"
	stubSize        = "size"
	stubPreview     = "preview_short"
)

// Placeholder stands in for a value the peer did not send. It is never produced for ordinary data.
type Placeholder struct {
	// Path locates the placeholder inside the hydrated value and is what an expansion request
	// sends back to the peer.
	Path Path

	Type        string
	Name        string
	Inspectable bool
	Size        int
	Preview     string

	// Stub is the value the peer put at Path, as received.
	Stub any
}

// IsPlaceholder reports whether v is an expandable placeholder.
func IsPlaceholder(v any) bool {
	_, ok := v.(*Placeholder)
	return ok
}

func newPlaceholder(path Path, stub any) *Placeholder {
	if p, ok := stub.(*Placeholder); ok {
		return p
	}
	p := &Placeholder{Path: path.Clone(), Stub: stub}
	fields, ok := stub.(map[string]any)
	if !ok {
		return p
	}
	p.Type, _ = fields[stubType].(string)
	p.Name, _ = fields[stubName].(string)
	p.Inspectable, _ = fields[stubInspectable].(bool)
	p.Preview, _ = fields[stubPreview].(string)
	switch size := fields[stubSize].(type) {
	case float64:
		p.Size = int(size)
	case int:
		p.Size = size
	}
	return p
}

func (p *Placeholder) clone() *Placeholder {
	cp := *p
	cp.Path = p.Path.Clone()
	cp.Stub = deepCopy(p.Stub)
	return &cp
}
