package x509name

/*
var.go contains global variables and constants used throughout this package.
*/

/*
ASN.1 universal tag constants relevant to names and name constraints.
These are defined largely for convenience so that [encoding/asn1] need
not be imported by the caller.
*/
const (
	invalidTag         = 0
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagUTF8String      = 12
	TagSequence        = 16
	TagSet             = 17
	TagNumericString   = 18
	TagPrintableString = 19
	TagT61String       = 20
	TagIA5String       = 22
	TagUTCTime         = 23
	TagGeneralizedTime = 24
	TagVisibleString   = 26
	TagGeneralString   = 27
	TagUniversalString = 28
	TagBMPString       = 30
)

/*
ASN.1 class constants.
*/
const (
	invalidClass int = iota - 1
	ClassUniversal
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

/*
ClassNames facilitates access to string ASN.1 class names.
*/
var ClassNames = map[int]string{
	invalidClass:         "INVALID CLASS",
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

/*
TagNames facilitates access to string ASN.1 tag names.
*/
var TagNames = map[int]string{
	invalidTag:         "INVALID TAG",       //  0
	TagBoolean:         "BOOLEAN",           //  1
	TagInteger:         "INTEGER",           //  2
	TagBitString:       "BIT STRING",        //  3
	TagOctetString:     "OCTET STRING",      //  4
	TagNull:            "NULL",              //  5
	TagOID:             "OBJECT IDENTIFIER", //  6
	TagUTF8String:      "UTF8 STRING",       // 12
	TagSequence:        "SEQUENCE",          // 16
	TagSet:             "SET",               // 17
	TagNumericString:   "NUMERIC STRING",    // 18
	TagPrintableString: "PRINTABLE STRING",  // 19
	TagT61String:       "T61 STRING",        // 20
	TagIA5String:       "IA5 STRING",        // 22
	TagUTCTime:         "UTC TIME",          // 23
	TagGeneralizedTime: "GENERALIZED TIME",  // 24
	TagVisibleString:   "VISIBLE STRING",    // 26
	TagGeneralString:   "GENERAL STRING",    // 27
	TagUniversalString: "UNIVERSAL STRING",  // 28
	TagBMPString:       "BMP STRING",        // 30
}

/*
Well-known attribute type and extension object identifiers.
*/
var (
	OIDCommonName             = mustOID(`2.5.4.3`)
	OIDSurname                = mustOID(`2.5.4.4`)
	OIDSerialNumber           = mustOID(`2.5.4.5`)
	OIDCountry                = mustOID(`2.5.4.6`)
	OIDLocality               = mustOID(`2.5.4.7`)
	OIDState                  = mustOID(`2.5.4.8`)
	OIDStreet                 = mustOID(`2.5.4.9`)
	OIDOrganization           = mustOID(`2.5.4.10`)
	OIDOrganizationalUnit     = mustOID(`2.5.4.11`)
	OIDTitle                  = mustOID(`2.5.4.12`)
	OIDGivenName              = mustOID(`2.5.4.42`)
	OIDInitials               = mustOID(`2.5.4.43`)
	OIDGeneration             = mustOID(`2.5.4.44`)
	OIDDNQualifier            = mustOID(`2.5.4.46`)
	OIDEmailAddress           = mustOID(`1.2.840.113549.1.9.1`)
	OIDDomainComponent        = mustOID(`0.9.2342.19200300.100.1.25`)
	OIDUserID                 = mustOID(`0.9.2342.19200300.100.1.1`)
	OIDIPAddress              = mustOID(`1.3.6.1.4.1.42.2.11.2.1`)
	OIDExtSubjectAltName      = mustOID(`2.5.29.17`)
	OIDExtNameConstraints     = mustOID(`2.5.29.30`)
)
