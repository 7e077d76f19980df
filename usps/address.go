package usps

import "github.com/signadot/go-usps/ir"

// Address is an address in a Verify or ZipCodeLookup request. Fields are
// sent in the order they are first set.
type Address struct {
	fieldSet
}

func NewAddress() *Address {
	return &Address{}
}

// SetAddress sets the street address, sent as Address2.
func (a *Address) SetAddress(v string) *Address {
	return a.SetField("Address2", v)
}

// SetApt sets the apartment or suite, sent as Address1.
func (a *Address) SetApt(v string) *Address {
	return a.SetField("Address1", v)
}

func (a *Address) SetCity(v string) *Address {
	return a.SetField("City", v)
}

func (a *Address) SetState(v string) *Address {
	return a.SetField("State", v)
}

func (a *Address) SetZip4(v string) *Address {
	return a.SetField("Zip4", v)
}

func (a *Address) SetZip5(v string) *Address {
	return a.SetField("Zip5", v)
}

func (a *Address) SetFirmName(v string) *Address {
	return a.SetField("FirmName", v)
}

// SetField sets any field. v may be a string, an integer, a bool or an
// *ir.Node.
func (a *Address) SetField(key string, v any) *Address {
	a.set(key, v)
	return a
}

func (a *Address) Fields() *ir.Node {
	return a.fields()
}
