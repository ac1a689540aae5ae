package source

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const asciiName = "us-ascii"

// encodingAliases maps spellings that neither the IANA nor the WHATWG index resolve the
// way a Python user expects. Keys use '-' in place of '_'.
var encodingAliases = map[string]string{
	"utf8":      "utf-8",
	"latin-1":   "iso-8859-1",
	"latin1":    "iso-8859-1",
	"l1":        "iso-8859-1",
	"iso8859-1": "iso-8859-1",
	"cp1250":    "windows-1250",
	"cp1251":    "windows-1251",
	"cp1252":    "windows-1252",
	"koi8r":     "koi8-r",
	"ascii":     asciiName,
	"646":       asciiName,
	"us-ascii":  asciiName,
}

var errInvalidASCII = errors.New("encoding: invalid ASCII")

// ASCII is a strict 7-bit encoding: any byte above 0x7F is a decoding error.
var ASCII encoding.Encoding = asciiEncoding{}

type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiValidator{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiValidator{}}
}

type asciiValidator struct{ transform.NopResetter }

func (asciiValidator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	for i, c := range src {
		if c >= utf8.RuneSelf {
			n = i
			err = errInvalidASCII
			break
		}
	}
	if len(dst) < n {
		n = len(dst)
		err = transform.ErrShortDst
	}
	copy(dst, src[:n])
	return n, n, err
}
