package domain

// ConfigKind tags the shape of a resolved configuration value.
type ConfigKind int

const (
	// KindAbsent means the option was not configured and had no default.
	KindAbsent ConfigKind = iota
	// KindScalar is plain text.
	KindScalar
	// KindRecord is a mapping of names to text or nested records.
	KindRecord
	// KindList is an ordered sequence of records.
	KindList
)

// String returns the kind name.
func (k ConfigKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// ConfigValue is the classified result of resolving one option.
// Exactly one shape is populated, selected by Kind.
type ConfigValue struct {
	kind   ConfigKind
	text   string
	record Record
	list   []Record
}

// Absent returns the value of an option that is neither configured nor defaulted.
func Absent() ConfigValue {
	return ConfigValue{kind: KindAbsent}
}

// Scalar returns a text value.
func Scalar(text string) ConfigValue {
	return ConfigValue{kind: KindScalar, text: text}
}

// RecordValue returns a record value.
func RecordValue(r Record) ConfigValue {
	return ConfigValue{kind: KindRecord, record: r}
}

// ListValue returns a list value.
func ListValue(items []Record) ConfigValue {
	return ConfigValue{kind: KindList, list: items}
}

// Kind returns the shape of the value.
func (v ConfigValue) Kind() ConfigKind {
	return v.kind
}

// IsAbsent reports whether the value is Absent.
func (v ConfigValue) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Text returns the scalar text, or "" for any other shape.
func (v ConfigValue) Text() string {
	if v.kind != KindScalar {
		return ""
	}
	return v.text
}

// Record returns the record, or an empty record for any other shape.
func (v ConfigValue) Record() Record {
	if v.kind != KindRecord {
		return Record{}
	}
	return v.record
}

// List returns the records of a list, or nil for any other shape.
func (v ConfigValue) List() []Record {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Record is an insertion-ordered mapping of names to text or nested records.
type Record struct {
	keys   []string
	text   map[string]string
	nested map[string]Record
}

// NewRecord builds a record from name/text pairs.
func NewRecord(pairs ...string) Record {
	var r Record
	for i := 0; i+1 < len(pairs); i += 2 {
		r.SetText(pairs[i], pairs[i+1])
	}
	return r
}

// SetText stores a text entry. A repeated key keeps its original position.
func (r *Record) SetText(key, value string) {
	r.touch(key)
	if r.text == nil {
		r.text = make(map[string]string)
	}
	delete(r.nested, key)
	r.text[key] = value
}

// SetNested stores a nested record entry.
func (r *Record) SetNested(key string, value Record) {
	r.touch(key)
	if r.nested == nil {
		r.nested = make(map[string]Record)
	}
	delete(r.text, key)
	r.nested[key] = value
}

func (r *Record) touch(key string) {
	if _, ok := r.text[key]; ok {
		return
	}
	if _, ok := r.nested[key]; ok {
		return
	}
	r.keys = append(r.keys, key)
}

// Keys returns the entry names in insertion order.
func (r Record) Keys() []string {
	return r.keys
}

// Len returns the number of entries.
func (r Record) Len() int {
	return len(r.keys)
}

// Text returns the text stored under key.
func (r Record) Text(key string) (string, bool) {
	v, ok := r.text[key]
	return v, ok
}

// Nested returns the record stored under key.
func (r Record) Nested(key string) (Record, bool) {
	v, ok := r.nested[key]
	return v, ok
}

// Lookup finds key among the record's text entries, then inside its nested records.
// List items wrap their fields in a record named after the item element, so this
// reaches e.g. "url" inside {offlineLink: {url, location}}.
func (r Record) Lookup(key string) string {
	if v, ok := r.text[key]; ok {
		return v
	}
	for _, k := range r.keys {
		if n, ok := r.nested[k]; ok {
			if v := n.Lookup(key); v != "" {
				return v
			}
		}
	}
	return ""
}

// Values returns every text entry in insertion order.
func (r Record) Values() []string {
	out := make([]string, 0, len(r.keys))
	for _, k := range r.keys {
		if v, ok := r.text[k]; ok {
			out = append(out, v)
		}
	}
	return out
}
