package x509name

/*
der.go contains Distinguished Encoding Rules helpers which are not
provided by the cryptobyte builder.
*/

import (
	"slices"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
addSetOf writes a DER SET OF whose members are the complete encodings
produced by each marshaler, sorted in ascending lexicographic order of
those encodings as X.690 requires.
*/
func addSetOf[T any](b *cryptobyte.Builder, members []T, marshal func(*cryptobyte.Builder, T)) {
	encs := make([][]byte, 0, len(members))
	for _, m := range members {
		var mb cryptobyte.Builder
		marshal(&mb, m)
		enc, err := mb.Bytes()
		if err != nil {
			b.SetError(err)
			return
		}
		encs = append(encs, enc)
	}

	slices.SortFunc(encs, bytesCmp)
	b.AddASN1(cbasn1.SET, func(c *cryptobyte.Builder) {
		for _, enc := range encs {
			c.AddBytes(enc)
		}
	})
}

/*
readAll applies read to successive elements of s until it is empty.
*/
func readAll(s cryptobyte.String, read func(*cryptobyte.String) error) (err error) {
	for !s.Empty() && err == nil {
		err = read(&s)
	}
	return
}
