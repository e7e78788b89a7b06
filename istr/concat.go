package istr

// Concat returns a new instance representing s followed by other, without
// rendering either operand. When s ends in a trailing literal fragment, that
// fragment and other's first fragment merge into one so that no empty
// bridging fragment appears between adjacent value slots; when s ends in a
// value slot, other's fragments are appended unchanged, since the
// literal/value boundary already separates the operands. Values follow in
// order. Neither operand is mutated.
func (s *String) Concat(other *String) *String {
	sf, sv, of := s.fragments, s.values, other.fragments

	var fragments []string
	if len(sf) > len(sv) {
		fragments = make([]string, 0, len(sf)+len(of)-1)
		fragments = append(fragments, sf[:len(sf)-1]...)
		fragments = append(fragments, sf[len(sf)-1]+of[0])
		fragments = append(fragments, of[1:]...)
	} else {
		fragments = make([]string, 0, len(sf)+len(of))
		fragments = append(fragments, sf...)
		fragments = append(fragments, of...)
	}

	values := make([]any, 0, len(sv)+len(other.values))
	values = append(values, sv...)
	values = append(values, other.values...)

	return &String{fragments: fragments, values: values}
}

// ConcatText concatenates a plain literal, treated as a single-fragment,
// zero-value instance.
func (s *String) ConcatText(text string) *String {
	return s.Concat(&String{fragments: []string{text}})
}
