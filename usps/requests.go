package usps

import (
	"github.com/signadot/go-usps/ir"
)

// Request is a request to one of the USPS APIs. Fields returns the content
// of the request's root element, without the USERID attribute.
type Request interface {
	API() API
	Fields() *ir.Node
}

// Raw is a request to any API with fields built by the caller.
type Raw struct {
	Name API
	Body *ir.Node
}

func (r *Raw) API() API { return r.Name }

func (r *Raw) Fields() *ir.Node {
	if r.Body == nil {
		return ir.Object()
	}
	return r.Body.Clone()
}

// ZipCodeLookup finds the ZIP codes of addresses.
type ZipCodeLookup struct {
	req *ir.Node
}

func (z *ZipCodeLookup) API() API { return APIZipCodeLookup }

// AddAddress adds an address. An empty id is replaced by the address's
// position in the request, counting from 1.
func (z *ZipCodeLookup) AddAddress(a *Address, id string) {
	if z.req == nil {
		z.req = ir.Object()
	}
	group(z.req, "Address", a.Fields(), id)
}

func (z *ZipCodeLookup) Fields() *ir.Node { return clone(z.req) }

// CityStateLookup finds the city and state of ZIP codes.
type CityStateLookup struct {
	req *ir.Node
}

func (c *CityStateLookup) API() API { return APICityStateLookup }

// AddZipCode adds a ZIP code. zip4 is omitted when empty or "0".
func (c *CityStateLookup) AddZipCode(zip5, zip4, id string) {
	if c.req == nil {
		c.req = ir.Object()
	}
	zip := ir.FromKeyVals([]ir.KeyVal{{Key: "Zip5", Val: ir.FromString(zip5)}})
	if zip4 != "" && zip4 != "0" {
		zip.Set("Zip4", ir.FromString(zip4))
	}
	group(c.req, "ZipCode", zip, id)
}

func (c *CityStateLookup) Fields() *ir.Node { return clone(c.req) }

// TrackConfirm tracks packages by tracking number.
type TrackConfirm struct {
	req *ir.Node
}

func (t *TrackConfirm) API() API { return APITrackV2 }

func (t *TrackConfirm) AddPackage(trackingID string) {
	if t.req == nil {
		t.req = ir.Object()
	}
	t.req.Append("TrackID", ir.Object().WithAttrs(ir.StringAttr("ID", trackingID)))
}

func (t *TrackConfirm) Fields() *ir.Node { return clone(t.req) }

// AddressVerify validates and standardises addresses.
type AddressVerify struct {
	// Revision is sent first when set; "1" requests the extended response.
	Revision string

	req *ir.Node
}

func (v *AddressVerify) API() API { return APIVerify }

// AddAddress adds an address. An empty id is replaced by the address's
// position in the request, counting from 1.
func (v *AddressVerify) AddAddress(a *Address, id string) {
	if v.req == nil {
		v.req = ir.Object()
	}
	group(v.req, "Address", a.Fields(), id)
}

func (v *AddressVerify) Fields() *ir.Node {
	res := ir.Object()
	if v.Revision != "" && v.Revision != "0" {
		res.Set("Revision", ir.FromString(v.Revision))
	}
	if v.req != nil {
		for i, f := range v.req.Fields {
			res.Set(f, v.req.Values[i].Clone())
		}
	}
	return res
}

func clone(y *ir.Node) *ir.Node {
	if y == nil {
		return ir.Object()
	}
	return y.Clone()
}
