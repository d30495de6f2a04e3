package conformance

// Suite is a complete YAML scenario file: a named group of Cases run
// against a fresh interpreter each.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is one example-based scenario: Theory Lisp source evaluated
// top-level-expression by top-level-expression, checked against an
// Expect. Source may contain multiple top-level forms (e.g. a `define`
// followed by a call using it); only the last form's result is checked.
type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Expect Expect `yaml:"expect"`
}

// Expect names exactly one of Value (exact printed-form match) or
// ErrorContains (a required substring of the printed Error/Go-error
// text) — never both.
type Expect struct {
	Value         string `yaml:"value,omitempty"`
	ErrorContains string `yaml:"error_contains,omitempty"`
}
