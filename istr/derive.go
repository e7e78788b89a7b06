package istr

import (
	"fmt"
	"regexp"

	"golang.org/x/text/encoding/ianaindex"
)

// Pattern compiles the rendered text as a regular expression. Compilation
// failures propagate unchanged from the regexp package.
func (s *String) Pattern() (*regexp.Regexp, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return regexp.Compile(text)
}

// Bytes returns the rendered text as UTF-8 bytes.
func (s *String) Bytes() ([]byte, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// BytesIn renders and encodes the text into the named IANA charset (e.g.
// "ISO-8859-1", "windows-1251"). An unknown or unsupported charset fails
// with a descriptive error; text the charset cannot represent fails with the
// encoder's error.
func (s *String) BytesIn(charset string) ([]byte, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("istr: unsupported encoding %q: %w", charset, err)
	}
	if enc == nil {
		// ianaindex knows the name but has no encoding for it.
		return nil, fmt.Errorf("istr: unsupported encoding %q", charset)
	}
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder().Bytes([]byte(text))
}
