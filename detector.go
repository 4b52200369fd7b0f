package filemagic

// Detector matches buffers against an ordered, immutable rule table.
// A Detector is safe for concurrent use.
type Detector struct {
	rules []Rule
	head  int
	tail  int
}

var defaultDetector = mustDetector(builtinRules)

func mustDetector(rules []Rule) *Detector {
	d, err := NewDetector(rules...)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDetector builds a Detector over rules, in the given priority order.
// The rules are copied, so later changes by the caller have no effect.
func NewDetector(rules ...Rule) (*Detector, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	d := &Detector{rules: make([]Rule, len(rules))}
	for i, r := range rules {
		if err := validateRule(r); err != nil {
			return nil, &RuleError{Index: i, Type: r.Type, Err: err}
		}
		r = r.clone()
		d.rules[i] = r

		d.head = max(d.head, r.Start.Reach())
		d.tail = max(d.tail, r.End.Reach())
	}
	return d, nil
}

// Default returns the Detector over the built-in rule table.
func Default() *Detector {
	return defaultDetector
}

// Detect returns the FileType of the first rule matching buf. The second
// result is false when no rule matches; that is not an error.
func (d *Detector) Detect(buf []byte) (FileType, bool) {
	for _, r := range d.rules {
		if r.Matches(buf) {
			return r.Type, true
		}
	}
	return Unknown, false
}

// Rules returns a copy of the detector's table.
func (d *Detector) Rules() []Rule {
	out := make([]Rule, len(d.rules))
	for i, r := range d.rules {
		out[i] = r.clone()
	}
	return out
}

// HeadReach is the number of leading bytes the start patterns can inspect.
func (d *Detector) HeadReach() int {
	return d.head
}

// TailReach is the number of trailing bytes the end patterns can inspect.
func (d *Detector) TailReach() int {
	return d.tail
}

// Detect runs the built-in rule table against buf.
func Detect(buf []byte) (FileType, bool) {
	return defaultDetector.Detect(buf)
}
