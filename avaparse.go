package x509name

/*
avaparse.go contains the textual distinguished name readers for the
RFC 1779, RFC 2253 and RFC 4514 grammars.
*/

import "unicode/utf8"

const (
	specialChars1779    = ",=\n+<>#;\\\""
	specialChars2253    = ",=+<>;\\\""
	specialCharsDefault = ",=\n+<>#;\\\" "
)

/*
avaReader reads a single AttributeTypeAndValue from a substring of a
larger input. Offsets reported in errors are relative to the larger
input.
*/
type avaReader struct {
	input  string
	s      string
	base   int
	pos    int
	format Format
}

const eof rune = -1

func (r *avaReader) read() (c rune) {
	if r.pos >= len(r.s) {
		return eof
	}
	var n int
	c, n = utf8.DecodeRuneInString(r.s[r.pos:])
	r.pos += n
	return
}

func (r *avaReader) errorf(m ...any) error {
	return parseErrorf(r.input, r.base+r.pos, m...)
}

func (r *avaReader) isTerminator(c rune) bool {
	switch c {
	case eof, '+', ',':
		return true
	case ';':
		return r.format != RFC2253
	}
	return false
}

/*
trailingSpace returns a Boolean value indicative of the unread remainder
of the AVA consisting solely of spaces, escaped or not.
*/
func (r *avaReader) trailingSpace() bool {
	rest := r.s[r.pos:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case ' ':
		case '\\':
			if i+1 >= len(rest) || rest[i+1] != ' ' {
				return false
			}
			i++
		default:
			return false
		}
	}
	return true
}

/*
hexPair returns the byte denoted by the escaped hex pair beginning with
c1, alongside a Boolean value indicative of c1 being a hex digit at all.
*/
func (r *avaReader) hexPair(c1 rune) (b byte, ok bool, err error) {
	if c1 > 0x7F || !isHexDigit(byte(c1)) {
		return
	}
	ok = true

	c2 := r.read()
	if c2 == eof || c2 > 0x7F || !isHexDigit(byte(c2)) {
		err = r.errorf("escaped hex value must include two valid digits")
		return
	}
	b = hexVal(byte(c1))<<4 | hexVal(byte(c2))
	return
}

func (r *avaReader) flushHex(hex []byte, dst *[]byte) error {
	if !utf8OK(hex) {
		return r.errorf("escaped hex pairs do not form valid UTF-8")
	}
	*dst = append(*dst, hex...)
	return nil
}

/*
invalidUTF8 returns the offset of the first byte of s which does not
begin a valid UTF-8 sequence, or -1 if s is well-formed.
*/
func invalidUTF8(s string) int {
	for i := 0; i < len(s); {
		c, n := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return -1
}

func (r *avaReader) parse(keywords map[string]string) (ava *AVA, err error) {
	if bad := invalidUTF8(r.s); bad >= 0 {
		err = parseErrorf(r.input, r.base+bad, "invalid UTF-8 sequence within AVA")
		return
	}

	eq := stridxb(r.s, '=')
	if eq < 0 {
		err = parseErrorf(r.input, r.base, "incorrect AVA format: missing '='")
		return
	}

	var oid ObjectIdentifier
	if oid, err = keywordOID(r.s[:eq], r.format, keywords); err != nil {
		err = &ParseError{Input: r.input, Offset: r.base, Msg: err.Error(), Err: err}
		return
	}
	r.pos = eq + 1

	c := r.read()
	if r.format == RFC2253 {
		if c == ' ' {
			err = r.errorf("incorrect AVA RFC2253 format: leading space must be escaped")
			return
		}
	} else {
		for c == ' ' || c == '\n' {
			c = r.read()
		}
	}

	switch {
	case c == eof:
		ava, err = newTextAVA(oid, ``, true)
	case c == '#':
		ava, err = r.parseHex(oid)
	case c == '"' && r.format != RFC2253:
		ava, err = r.parseQuoted(oid)
	default:
		ava, err = r.parseString(oid, c)
	}

	if err != nil {
		if _, is := err.(*ParseError); !is {
			err = &ParseError{Input: r.input, Offset: r.base + r.pos, Msg: err.Error(), Err: err}
		}
	}
	return
}

func (r *avaReader) stray(c rune) (err error) {
	if c != eof {
		err = r.errorf("unexpected '", string(c), "' within AVA")
	}
	return
}

func (r *avaReader) parseHex(oid ObjectIdentifier) (ava *AVA, err error) {
	var (
		der   []byte
		b     byte
		count int
	)

	for {
		c := r.read()
		if r.isTerminator(c) {
			if err = r.stray(c); err != nil {
				return
			}
			break
		}

		if c == ' ' || c == '\n' {
			// only whitespace may follow
			for ; !r.isTerminator(c); c = r.read() {
				if c != ' ' && c != '\n' {
					err = r.errorf("AVA parse, invalid hex digit: ", string(c))
					return
				}
			}
			if err = r.stray(c); err != nil {
				return
			}
			break
		}

		if c > 0x7F || !isHexDigit(byte(c)) {
			err = r.errorf("AVA parse, invalid hex digit: ", string(c))
			return
		}

		if count%2 == 1 {
			der = append(der, b<<4|hexVal(byte(c)))
		} else {
			b = hexVal(byte(c))
		}
		count++
	}

	if count == 0 {
		err = r.errorf("AVA parse, zero hex digits")
	} else if count%2 == 1 {
		err = r.errorf("AVA parse, odd number of hex digits")
	} else {
		ava, err = NewAVAFromDER(oid, der)
	}

	return
}

func (r *avaReader) parseQuoted(oid ObjectIdentifier) (ava *AVA, err error) {
	var (
		val       []byte
		hex       []byte
		printable = true
	)

	c := r.read()
	for c != '"' {
		if c == eof {
			err = r.errorf("quoted string did not end in quote")
			return
		}

		if c == '\\' {
			if c = r.read(); c == eof {
				err = r.errorf("quoted string did not end in quote")
				return
			}

			var (
				hb byte
				ok bool
			)
			if hb, ok, err = r.hexPair(c); err != nil {
				return
			} else if ok {
				printable = false
				hex = append(hex, hb)
				c = r.read()
				continue
			}

			if stridx(specialChars1779, string(c)) < 0 {
				err = r.errorf("invalid escaped character in AVA: ", string(c))
				return
			}
		}

		if len(hex) > 0 {
			if err = r.flushHex(hex, &val); err != nil {
				return
			}
			hex = hex[:0]
		}

		printable = printable && isPrintableChar(c)
		val = utf8.AppendRune(val, c)
		c = r.read()
	}

	if len(hex) > 0 {
		if err = r.flushHex(hex, &val); err != nil {
			return
		}
	}

	for c = r.read(); c == ' ' || c == '\n'; c = r.read() {
	}
	if c != eof {
		err = r.errorf("AVA had characters other than whitespace after terminating quote")
		return
	}

	return newTextAVA(oid, string(val), printable)
}

func (r *avaReader) parseString(oid ObjectIdentifier, c rune) (ava *AVA, err error) {
	var (
		val       []byte
		hex       []byte
		printable = true
		leading   = true
		spaces    int
	)

	addSpaces := func() {
		for ; spaces > 0; spaces-- {
			val = append(val, ' ')
		}
	}

	for {
		escape := false
		if c == '\\' {
			escape = true
			if c = r.read(); c == eof {
				err = r.errorf("invalid trailing backslash")
				return
			}

			var (
				hb byte
				ok bool
			)
			if hb, ok, err = r.hexPair(c); err != nil {
				return
			} else if ok {
				printable = false
				hex = append(hex, hb)
				leading = false
				if c = r.read(); r.isTerminator(c) {
					if err = r.stray(c); err != nil {
						return
					}
					break
				}
				continue
			}

			switch r.format {
			case DefaultFormat:
				if stridx(specialCharsDefault, string(c)) < 0 {
					err = r.errorf("invalid escaped character in AVA: '", string(c), "'")
					return
				}
			case RFC2253:
				switch {
				case c == ' ':
					if !leading && !r.trailingSpace() {
						err = r.errorf("invalid escaped space character in AVA: only a " +
							"leading or trailing space character can be escaped")
						return
					}
				case c == '#':
				case stridx(specialChars2253, string(c)) < 0:
					err = r.errorf("invalid escaped character in AVA: '", string(c), "'")
					return
				}
			}
		} else if r.format == RFC2253 && stridx(specialChars2253, string(c)) >= 0 {
			err = r.errorf("character '", string(c), "' in AVA appears without escape")
			return
		}

		if len(hex) > 0 {
			addSpaces()
			if err = r.flushHex(hex, &val); err != nil {
				return
			}
			hex = hex[:0]
		}

		printable = printable && isPrintableChar(c)
		if c == ' ' && !escape {
			// unescaped trailing spaces are dropped
			spaces++
		} else {
			addSpaces()
			val = utf8.AppendRune(val, c)
		}

		c = r.read()
		leading = false
		if r.isTerminator(c) {
			if err = r.stray(c); err != nil {
				return
			}
			break
		}
	}

	if r.format == RFC2253 && spaces > 0 {
		err = r.errorf("incorrect AVA RFC2253 format: trailing space must be escaped")
		return
	}

	if len(hex) > 0 {
		addSpaces()
		if err = r.flushHex(hex, &val); err != nil {
			return
		}
	}

	return newTextAVA(oid, string(val), printable)
}

/*
ParseAVA returns an instance of *[AVA] following an attempt to parse the
single AttributeTypeAndValue text, e.g. `CN=John Smith`, under format.
The keywords map, which may be nil, maps additional keywords to dotted
OIDs.
*/
func ParseAVA(text string, format Format, keywords map[string]string) (*AVA, error) {
	if err := checkParseFormat(format); err != nil {
		return nil, err
	}
	r := &avaReader{input: text, s: text, format: format}
	return r.parse(keywords)
}

func checkParseFormat(format Format) (err error) {
	switch format {
	case DefaultFormat, RFC1779, RFC2253:
	default:
		err = parseErrorf(``, -1, "unsupported parse format ", format.String())
	}
	return
}

/*
splitUnescaped returns the offsets of every separator byte within s which
is neither escaped by an odd run of backslashes nor, when quotes is true,
enclosed within double quotes.
*/
func splitUnescaped(s string, seps string, quotes bool) (idx []int) {
	var inQuote bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			i++ // skip the escaped character
		case c == '"' && quotes:
			inQuote = !inQuote
		case stridxb(seps, c) >= 0 && !inQuote:
			idx = append(idx, i)
		}
	}
	return
}

/*
parseRDNText parses the RelativeDistinguishedName held within s, which
begins at offset base of input.
*/
func parseRDNText(input, s string, base int, format Format, keywords map[string]string) (rdn *RDN, err error) {
	var (
		avas  []*AVA
		start int
	)

	bounds := append(splitUnescaped(s, `+`, format != RFC2253), len(s))
	for _, end := range bounds {
		sub := s[start:end]
		if len(sub) == 0 {
			err = parseErrorf(input, base+start, "empty AVA in RDN \"", s, "\"")
			return
		}

		r := &avaReader{input: input, s: sub, base: base + start, format: format}
		var ava *AVA
		if ava, err = r.parse(keywords); err != nil {
			return
		}
		avas = append(avas, ava)
		start = end + 1
	}

	rdn = &RDN{avas: avas}
	return
}

/*
parseDNText parses the complete distinguished name text, returning its
RDNs in encoding (root-first) order.
*/
func parseDNText(text string, format Format, keywords map[string]string) (rdns []*RDN, err error) {
	if len(text) == 0 {
		return
	}

	seps, quotes := `,;`, true
	if format == RFC2253 {
		seps, quotes = `,`, false
	}

	var start int
	bounds := append(splitUnescaped(text, seps, quotes), len(text))
	for _, end := range bounds {
		var rdn *RDN
		if rdn, err = parseRDNText(text, text[start:end], start, format, keywords); err != nil {
			return nil, err
		}
		rdns = append(rdns, rdn)
		start = end + 1
	}

	// display order is leaf-first; encoding order is root-first
	for i, j := 0, len(rdns)-1; i < j; i, j = i+1, j-1 {
		rdns[i], rdns[j] = rdns[j], rdns[i]
	}
	debugParse("parsed distinguished name", "input", text, "format", format, "rdns", len(rdns))
	return
}
