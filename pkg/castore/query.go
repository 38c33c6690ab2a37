package castore

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Query is an ordered set of URL parameters for a single operation.
//
// The zero value is an empty query ready to use.
type Query struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value interface{}
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Set adds the parameter unless the value is falsy: nil, an empty string,
// a numeric zero or NaN, false, or a nil slice. Setting an existing key
// replaces its value in place.
func (q *Query) Set(key string, value interface{}) *Query {
	if isFalsy(value) {
		return q
	}

	return q.put(key, value)
}

// Require adds the parameter even when the value is zero. Nil values and
// empty strings are still left out of the encoded string.
func (q *Query) Require(key string, value interface{}) *Query {
	return q.put(key, value)
}

// Get returns the value stored for key.
func (q *Query) Get(key string) (interface{}, bool) {
	if q == nil {
		return nil, false
	}

	for _, p := range q.params {
		if p.key == key {
			return p.value, true
		}
	}

	return nil, false
}

// Keys returns the parameter names in insertion order.
func (q *Query) Keys() []string {
	if q == nil {
		return nil
	}

	keys := make([]string, 0, len(q.params))
	for _, p := range q.params {
		keys = append(keys, p.key)
	}

	return keys
}

// Len returns the number of parameters.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}

	return len(q.params)
}

// Encode serializes the query. See EncodeQuery.
func (q *Query) Encode() string {
	return EncodeQuery(q)
}

func (q *Query) put(key string, value interface{}) *Query {
	for i := range q.params {
		if q.params[i].key == key {
			q.params[i].value = value

			return q
		}
	}

	q.params = append(q.params, queryParam{key: key, value: value})

	return q
}

// EncodeQuery turns a query into a URL query string.
//
// Pairs are emitted in insertion order and joined with '&'. Scalars encode
// as key=value. Slices encode as a single key whose value is the literal
// ["e1","e2",...]; quotes and backslashes inside elements are
// backslash-escaped. Keys and values are escaped like encodeURIComponent.
// Nil values and empty strings are omitted. A nil or empty query encodes to
// the empty string.
func EncodeQuery(q *Query) string {
	if q == nil {
		return ""
	}

	parts := make([]string, 0, len(q.params))

	for _, p := range q.params {
		value, ok := encodeValue(p.value)
		if !ok {
			continue
		}

		parts = append(parts, EscapeComponent(p.key)+"="+EscapeComponent(value))
	}

	return strings.Join(parts, "&")
}

// FormatArray renders elements as the store's array literal, unescaped.
func FormatArray(elements []string) string {
	var b strings.Builder

	b.WriteByte('[')

	for i, element := range elements {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteByte('"')
		b.WriteString(quoteEscaper.Replace(element))
		b.WriteByte('"')
	}

	b.WriteByte(']')

	return b.String()
}

// ParseArray decodes an array literal produced by FormatArray.
func ParseArray(literal string) ([]string, error) {
	if len(literal) < 2 || literal[0] != '[' || literal[len(literal)-1] != ']' {
		return nil, fmt.Errorf("%w: missing brackets", ErrInvalidArray)
	}

	body := literal[1 : len(literal)-1]
	elements := []string{}

	for pos := 0; pos < len(body); {
		if body[pos] != '"' {
			return nil, fmt.Errorf("%w: expected quote at %d", ErrInvalidArray, pos+1)
		}

		var element strings.Builder

		pos++

		closed := false

		for pos < len(body) {
			c := body[pos]
			if c == '\\' && pos+1 < len(body) {
				element.WriteByte(body[pos+1])

				pos += 2

				continue
			}

			pos++

			if c == '"' {
				closed = true

				break
			}

			element.WriteByte(c)
		}

		if !closed {
			return nil, fmt.Errorf("%w: unterminated element", ErrInvalidArray)
		}

		elements = append(elements, element.String())

		if pos < len(body) {
			if body[pos] != ',' {
				return nil, fmt.Errorf("%w: expected comma at %d", ErrInvalidArray, pos+1)
			}

			pos++
		}
	}

	return elements, nil
}

// EscapeComponent escapes s the way encodeURIComponent does: every byte
// outside A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)

			continue
		}

		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}

	return b.String()
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}

// encodeValue returns the unescaped string form of a parameter value.
func encodeValue(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}

		rv = rv.Elem()
	}

	if isList(rv) {
		elements := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elements = append(elements, stringify(rv.Index(i)))
		}

		return FormatArray(elements), true
	}

	s := stringify(rv)

	return s, s != ""
}

func isList(rv reflect.Value) bool {
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}

	// []byte is treated as a string.
	return rv.Type().Elem().Kind() != reflect.Uint8
}

func stringify(rv reflect.Value) string {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "null"
		}

		rv = rv.Elem()
	}

	if rv.CanInterface() {
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}

		elements := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elements = append(elements, stringify(rv.Index(i)))
		}

		return strings.Join(elements, ",")
	default:
		return fmt.Sprint(rv.Interface())
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func isFalsy(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()

		return f == 0 || math.IsNaN(f)
	default:
		return false
	}
}
