package wrsnmp

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Variable is one varbind returned by the switch.
type Variable struct {
	OID   string
	Value interface{}
}

// NormalizeOID strips blanks and the leading dot.
func NormalizeOID(oid string) string {
	return strings.TrimPrefix(strings.TrimSpace(oid), ".")
}

// String renders the value as text; octet strings are returned verbatim.
func (v Variable) String() string {
	switch t := v.Value.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case *big.Int:
		return t.String()
	}
	return fmt.Sprint(v.Value)
}

// Bytes returns the raw octets of a string value.
func (v Variable) Bytes() []byte {
	switch t := v.Value.(type) {
	case []byte:
		return t
	case string:
		return []byte(t)
	}
	return []byte(v.String())
}

// Int converts integer, counter and gauge values as well as numeric text.
func (v Variable) Int() (int64, error) {
	switch t := v.Value.(type) {
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float32:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case *big.Int:
		return t.Int64(), nil
	}
	s := cleanText(v.String())
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), nil
	}
	return 0, fmt.Errorf("value %q of %s is not an integer", s, v.OID)
}

// Float converts numeric values, including numbers sent as display strings.
func (v Variable) Float() (float64, error) {
	switch t := v.Value.(type) {
	case float32:
		return float64(t), nil
	case float64:
		return t, nil
	case string, []byte:
		s := cleanText(v.String())
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q of %s is not a number", s, v.OID)
		}
		return f, nil
	}
	i, err := v.Int()
	if err != nil {
		return 0, err
	}
	return float64(i), nil
}

// Index returns the part of the OID below base, e.g. the row index of a
// table cell. It returns "" when the OID is not inside base.
func (v Variable) Index(base string) string {
	base = NormalizeOID(base) + "."
	oid := NormalizeOID(v.OID)
	if !strings.HasPrefix(oid, base) {
		return ""
	}
	return oid[len(base):]
}

func cleanText(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

// CompareOIDs orders two dotted OIDs numerically.
func CompareOIDs(a, b string) int {
	as := strings.Split(NormalizeOID(a), ".")
	bs := strings.Split(NormalizeOID(b), ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aerr := strconv.ParseUint(as[i], 10, 64)
		bi, berr := strconv.ParseUint(bs[i], 10, 64)
		if aerr != nil || berr != nil {
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
			continue
		}
		if ai < bi {
			return -1
		}
		if ai > bi {
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

// SortVariables orders a walk result by OID.
func SortVariables(vars []Variable) {
	sort.SliceStable(vars, func(i, j int) bool {
		return CompareOIDs(vars[i].OID, vars[j].OID) < 0
	})
}
