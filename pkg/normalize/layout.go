package normalize

import (
	"strings"

	"github.com/jdziat/schedule-eta/pkg/core"
)

// directives maps strftime directives to Go layout elements. Numeric fields
// use the unpadded Go elements so "2/02/2018" parses with "%m/%d/%Y".
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "1",
	'd': "2",
	'e': "_2",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'H': "15",
	'I': "3",
	'M': "4",
	'S': "5",
	'p': "PM",
}

// Layout converts a strftime date pattern into a Go time layout.
// Literal letters and digits other than 'T' are rejected because Go would
// read them as layout elements.
func Layout(format string) (string, error) {
	if format == "" {
		return "", core.Invalid(core.ErrUnsupportedFormat, format)
	}
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			if isAlnum(c) && c != 'T' {
				return "", &core.ValidationError{Reason: core.ErrUnsupportedFormat, Value: format,
					Detail: "literal " + string(c) + " not allowed"}
			}
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(format) {
			return "", &core.ValidationError{Reason: core.ErrUnsupportedFormat, Value: format, Detail: "trailing %"}
		}
		if format[i] == '%' {
			b.WriteByte('%')
			continue
		}
		elem, ok := directives[format[i]]
		if !ok {
			return "", &core.ValidationError{Reason: core.ErrUnsupportedFormat, Value: format,
				Detail: "directive %" + string(format[i])}
		}
		b.WriteString(elem)
	}
	return b.String(), nil
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
