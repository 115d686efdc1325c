package x509name

/*
keyword.go contains the attribute type keyword tables used to read and
write distinguished names in their textual forms.
*/

/*
Format selects the textual grammar used when parsing or emitting a
distinguished name.
*/
type Format int

const (
	// DefaultFormat accepts the union of RFC 1779, RFC 2253 and RFC 4514.
	DefaultFormat Format = iota

	// RFC1779 selects the grammar of RFC 1779.
	RFC1779

	// RFC2253 selects the strict grammar of RFC 2253 (and RFC 4514).
	RFC2253

	// Canonical selects the RFC 2253 canonical form used for comparisons.
	// It is only meaningful for output.
	Canonical
)

var formatNames = map[Format]string{
	DefaultFormat: "DEFAULT",
	RFC1779:       "RFC1779",
	RFC2253:       "RFC2253",
	Canonical:     "CANONICAL",
}

/*
String returns the string representation of the receiver instance.
*/
func (r Format) String() string {
	if s, ok := formatNames[r]; ok {
		return s
	}
	return "UNKNOWN FORMAT"
}

type keywordEntry struct {
	keyword string
	oid     ObjectIdentifier
	rfc1779 bool
	rfc2253 bool
}

func (r keywordEntry) compliant(format Format) bool {
	switch format {
	case RFC1779:
		return r.rfc1779
	case RFC2253, Canonical:
		return r.rfc2253
	}
	return true
}

/*
keywordTable is ordered so that, where more than one keyword shares an
OID, the later keyword is the one emitted.
*/
var keywordTable = []keywordEntry{
	{"CN", OIDCommonName, true, true},
	{"C", OIDCountry, true, true},
	{"L", OIDLocality, true, true},
	{"S", OIDState, false, false},
	{"ST", OIDState, true, true},
	{"O", OIDOrganization, true, true},
	{"OU", OIDOrganizationalUnit, true, true},
	{"T", OIDTitle, false, false},
	{"IP", OIDIPAddress, false, false},
	{"STREET", OIDStreet, true, true},
	{"DC", OIDDomainComponent, false, true},
	{"DNQUALIFIER", OIDDNQualifier, false, false},
	{"DNQ", OIDDNQualifier, false, false},
	{"SURNAME", OIDSurname, false, false},
	{"GIVENNAME", OIDGivenName, false, false},
	{"INITIALS", OIDInitials, false, false},
	{"GENERATION", OIDGeneration, false, false},
	{"EMAIL", OIDEmailAddress, false, false},
	{"EMAILADDRESS", OIDEmailAddress, false, false},
	{"UID", OIDUserID, false, true},
	{"SERIALNUMBER", OIDSerialNumber, false, false},
}

var (
	keywordMap = map[string]keywordEntry{}
	oidMap     = map[string]keywordEntry{}
)

func init() {
	for _, e := range keywordTable {
		keywordMap[e.keyword] = e
		oidMap[e.oid.String()] = e
	}
}

/*
keywordOID returns the [ObjectIdentifier] designated by the attribute type
keyword kw under format. The user-supplied map of keywords to dotted OIDs
is consulted before the built-in table; its keys are matched regardless
of case. Keywords not found in either table must be numeric OIDs, which
RFC1779 further requires to be prefixed with "OID.".
*/
func keywordOID(kw string, format Format, keywords map[string]string) (oid ObjectIdentifier, err error) {
	if len(kw) == 0 {
		err = nameErrorf("empty keyword")
		return
	}

	kw = uc(kw)
	if format == RFC2253 {
		if hasPfx(kw, ` `) || hasSfx(kw, ` `) {
			err = nameErrorf("invalid leading or trailing space in keyword \"", kw, "\"")
			return
		}
	} else {
		kw = trimS(kw)
	}

	for k, v := range keywords {
		if uc(k) == kw {
			if oid, err = ParseObjectIdentifier(v); err != nil {
				err = wrapf(err, "keyword %s maps to an invalid OID", kw)
			}
			return
		}
	}

	if e, ok := keywordMap[kw]; ok && e.compliant(format) {
		oid = e.oid
		return
	}

	switch format {
	case RFC1779:
		if !hasPfx(kw, `OID.`) {
			err = nameErrorf("invalid RFC1779 keyword: ", kw)
			return
		}
		kw = kw[4:]
	case DefaultFormat:
		kw = trimPfx(kw, `OID.`)
	}

	if len(kw) == 0 || !isDigit(kw[0]) {
		err = nameErrorf("invalid keyword \"", kw, "\"")
		return
	}

	oid, err = ParseObjectIdentifier(kw)
	return
}

/*
oidKeyword returns the keyword used to emit attribute type oid under
format. A user-supplied keyword for oid takes precedence provided it
begins with a letter and otherwise holds only letters, digits and the
underscore. OIDs lacking a compliant keyword are emitted numerically,
prefixed with "OID." unless format is RFC2253 or Canonical.
*/
func oidKeyword(oid ObjectIdentifier, format Format, keywords map[string]string) string {
	dot := oid.String()
	if kw, ok := keywords[dot]; ok && format != Canonical {
		kw = trimS(kw)
		err := keywordConstraints.Constrain(kw)
		if err == nil {
			return kw
		}
		debugParse("ignoring invalid user keyword", "oid", dot, "keyword", kw, "error", err)
	}

	if e, ok := oidMap[dot]; ok && e.compliant(format) {
		return e.keyword
	}

	if format == RFC2253 || format == Canonical {
		return dot
	}
	return `OID.` + dot
}

/*
hasRFC2253Keyword returns a Boolean value indicative of oid having a
built-in RFC 2253 keyword.
*/
func hasRFC2253Keyword(oid ObjectIdentifier) bool {
	e, ok := oidMap[oid.String()]
	return ok && e.rfc2253
}
