package domain

// PropertyFileHeader is the comment written at the top of every generated property file.
const PropertyFileHeader = "Generated by prosa - DO NOT EDIT THIS FILE!"

// PropertyEntry is one key/value pair of a property file.
type PropertyEntry struct {
	Key   string
	Value string
}

// PropertyFile is the generated property file before it is rendered.
type PropertyFile struct {
	Header  string
	entries []PropertyEntry
	index   map[string]int
}

// NewPropertyFile creates an empty property file with the standard header.
func NewPropertyFile() *PropertyFile {
	return &PropertyFile{
		Header: PropertyFileHeader,
		index:  make(map[string]int),
	}
}

// Set stores a value. A repeated key is overridden in place.
func (f *PropertyFile) Set(key, value string) {
	if i, ok := f.index[key]; ok {
		f.entries[i].Value = value
		return
	}
	f.index[key] = len(f.entries)
	f.entries = append(f.entries, PropertyEntry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (f *PropertyFile) Get(key string) (string, bool) {
	i, ok := f.index[key]
	if !ok {
		return "", false
	}
	return f.entries[i].Value, true
}

// Entries returns the entries in insertion order.
func (f *PropertyFile) Entries() []PropertyEntry {
	return f.entries
}

// Keys returns the keys in insertion order.
func (f *PropertyFile) Keys() []string {
	keys := make([]string, len(f.entries))
	for i, e := range f.entries {
		keys[i] = e.Key
	}
	return keys
}
