package types

// Result is the serializable envelope printed by the CLI for json and yaml
// output.
type Result struct {
	Operation string            `json:"operation" yaml:"operation"`
	Operands  []string          `json:"operands" yaml:"operands"`
	Kind      string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Scalar    *string           `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Vector    []string          `json:"vector,omitempty" yaml:"vector,omitempty"`
	Boolean   *bool             `json:"boolean,omitempty" yaml:"boolean,omitempty"`
	Text      string            `json:"text" yaml:"text"`
	Metadata  map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NewResult creates a result for an operation
func NewResult(operation string, operands ...string) *Result {
	return &Result{
		Operation: operation,
		Operands:  operands,
	}
}

// WithScalar sets a decimal-rendered scalar value
func (r *Result) WithScalar(value string) *Result {
	r.Scalar = &value
	return r
}

// WithBoolean sets a predicate value
func (r *Result) WithBoolean(value bool) *Result {
	r.Boolean = &value
	return r
}

// WithVector sets decimal-rendered coordinates
func (r *Result) WithVector(coords []string) *Result {
	r.Vector = coords
	return r
}

// WithKind sets a classification label such as "parallel" or "coincident"
func (r *Result) WithKind(kind string) *Result {
	r.Kind = kind
	return r
}

// WithText sets the human readable rendering
func (r *Result) WithText(text string) *Result {
	r.Text = text
	return r
}

// AddMetadata attaches a key/value pair
func (r *Result) AddMetadata(key, value string) *Result {
	if r.Metadata == nil {
		r.Metadata = make(map[string]string)
	}
	r.Metadata[key] = value
	return r
}
