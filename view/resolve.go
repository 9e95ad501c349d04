package view

// resolveIndex maps a field name to the index of its underlying key. Each
// configured prefix is tried in order before the bare name, so a prefixed
// key shadows an unprefixed one of the same name.
func (v *DictView) resolveIndex(name string) (int, bool) {
	for _, p := range v.cfg.prefixes {
		if i, ok := fieldIndex(v.data, p+name); ok {
			return i, true
		}
	}
	return fieldIndex(v.data, name)
}
