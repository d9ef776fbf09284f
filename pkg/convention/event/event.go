package event

// Kind is the events-list key that marks an entry as a load balancer rule.
const Kind = "alb"

// Entry is one item of a function's events list. Only alb entries carry a Definition.
type Entry struct {
	Kind string
	Alb  *Definition
}

// Definition is a single listener rule declared on a function.
type Definition struct {
	FunctionName string      `json:"functionName,omitempty" yaml:"-"`
	Priority     int         `json:"priority" yaml:"priority"`
	ListenerArn  string      `json:"listenerArn,omitempty" yaml:"listenerArn"`
	Conditions   *Conditions `json:"conditions,omitempty" yaml:"conditions"`
}

// Conditions holds the typed clauses of a rule.
//
// Declared lists every key found in the source mapping, in source order,
// including unrecognized keys and recognized keys whose value was malformed.
// A malformed clause leaves its typed field empty.
type Conditions struct {
	Path     string           `json:"path,omitempty"`
	Host     StringList       `json:"host,omitempty"`
	Method   StringList       `json:"method,omitempty"`
	Header   *HeaderCondition `json:"header,omitempty"`
	Query    []QueryParam     `json:"query,omitempty"`
	Ip       StringList       `json:"ip,omitempty"`
	Declared []string         `json:"-"`
}

type HeaderCondition struct {
	Name   string     `json:"name" yaml:"name"`
	Values StringList `json:"values" yaml:"values"`
}

type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StringList is a list that may be written as a bare string.
type StringList []string

func (c *Conditions) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Declared)
}

// Keys returns the declared condition keys in source order.
func (c *Conditions) Keys() []string {
	if c == nil {
		return nil
	}
	return c.Declared
}

func (c *Conditions) Has(key string) bool {
	if c == nil {
		return false
	}
	for _, declared := range c.Declared {
		if declared == key {
			return true
		}
	}
	return false
}

// Resolve returns the rule's own listener or the fallback.
func (d Definition) Resolve(defaultListenerArn string) string {
	if d.ListenerArn != "" {
		return d.ListenerArn
	}
	return defaultListenerArn
}
