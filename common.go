package x509name

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

/*
official import aliases.
*/
var (
	itoa       func(int) string                       = strconv.Itoa
	fmtUint    func(uint64, int) string               = strconv.FormatUint
	puint      func(string, int, int) (uint64, error) = strconv.ParseUint
	lc         func(string) string                    = strings.ToLower
	uc         func(string) string                    = strings.ToUpper
	split      func(string, string) []string          = strings.Split
	join       func([]string, string) string          = strings.Join
	hexstr     func([]byte) string                    = hex.EncodeToString
	hexdec     func(string) ([]byte, error)           = hex.DecodeString
	stridx     func(string, string) int               = strings.Index
	stridxb    func(string, byte) int                 = strings.IndexByte
	lidxb      func(string, byte) int                 = strings.LastIndexByte
	hasPfx     func(string, string) bool              = strings.HasPrefix
	hasSfx     func(string, string) bool              = strings.HasSuffix
	trimPfx    func(string, string) string            = strings.TrimPrefix
	trimS      func(string) string                    = strings.TrimSpace
	cntns      func(string, string) bool              = strings.Contains
	cntnsAny   func(string, string) bool              = strings.ContainsAny
	streqf     func(string, string) bool              = strings.EqualFold
	fields     func(string) []string                  = strings.Fields
	isSpace    func(rune) bool                        = unicode.IsSpace
	isLetter   func(rune) bool                        = unicode.IsLetter
	isDigitR   func(rune) bool                        = unicode.IsDigit
	utf8OK     func([]byte) bool                      = utf8.Valid
	runeLen    func(rune) int                         = utf8.RuneLen
	bytesEqual func([]byte, []byte) bool              = bytes.Equal
	bytesCmp   func([]byte, []byte) int               = bytes.Compare
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
isDigit returns a Boolean value indicative of c being an ASCII
decimal digit.
*/
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

/*
isAlpha returns a Boolean value indicative of c being an ASCII
letter of either case.
*/
func isAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}

func isNumber(x string) bool {
	if len(x) == 0 {
		return false
	}

	for i := 0; i < len(x); i++ {
		if !isDigit(x[i]) {
			return false
		}
	}

	return true
}

/*
cloneBytes returns a copy of b, preserving the distinction between
nil and zero-length input.
*/
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}

/*
collapseSpace reduces every run of whitespace within s to a single
ASCII space and trims both ends.
*/
func collapseSpace(s string) string { return join(fields(s), ` `) }
