package wrcheck

import (
	"errors"
	"strings"

	"github.com/pb1dft/check-white-rabbit/wrsnmp"
)

var errNoSuchObject = errors.New("noSuchObject")

// fakeSwitch answers from an in-memory OID tree.
type fakeSwitch struct {
	values map[string]interface{}
	walks  int
}

func (f *fakeSwitch) Get(oid string) (wrsnmp.Variable, error) {
	v, ok := f.values[oid]
	if !ok {
		return wrsnmp.Variable{}, errNoSuchObject
	}
	return wrsnmp.Variable{OID: oid, Value: v}, nil
}

func (f *fakeSwitch) Walk(oid string) ([]wrsnmp.Variable, error) {
	f.walks++
	var vars []wrsnmp.Variable
	for o, v := range f.values {
		if strings.HasPrefix(o, oid+".") {
			vars = append(vars, wrsnmp.Variable{OID: o, Value: v})
		}
	}
	wrsnmp.SortVariables(vars)
	return vars, nil
}

func newFakeSwitch(values map[string]interface{}) *fakeSwitch {
	return &fakeSwitch{values: values}
}
