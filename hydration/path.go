package hydration

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Path addresses a location inside a value tree. Each element is either an object key (string) or
// an array index (any integer type; integral float64 values as produced by JSON decoding are
// accepted too).
type Path []any

// Clone returns a copy of the path that shares no backing array with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	cp := make(Path, len(p))
	copy(cp, p)
	return cp
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		a, aok := mapKey(p[i])
		b, bok := mapKey(other[i])
		if !aok || !bok {
			if p[i] != other[i] {
				return false
			}
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		if s, ok := elem.(string); ok {
			sb.WriteString(strconv.Quote(s))
			continue
		}
		k, ok := mapKey(elem)
		if !ok {
			k = "?"
		}
		sb.WriteString(k)
	}
	sb.WriteByte(']')
	return sb.String()
}

// UnmarshalJSON keeps integral numbers as int so that decoded paths compare equal to literal ones.
func (p *Path) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}
	out := make(Path, len(raw))
	for i, elem := range raw {
		if f, ok := elem.(float64); ok && f == math.Trunc(f) {
			out[i] = int(f)
			continue
		}
		out[i] = elem
	}
	*p = out
	return nil
}

func mapKey(elem any) (string, bool) {
	switch v := elem.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		if v != math.Trunc(v) {
			return "", false
		}
		return strconv.FormatInt(int64(v), 10), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

func sliceIndex(elem any, length int) (int, bool) {
	var idx int
	switch v := elem.(type) {
	case int:
		idx = v
	case int64:
		idx = int(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, false
		}
		idx = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		idx = int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		idx = n
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, false
		}
		idx = n
	default:
		return 0, false
	}
	if idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}
