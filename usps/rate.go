package usps

import "github.com/signadot/go-usps/ir"

const (
	ServiceFirstClass           = "FIRST CLASS"
	ServiceFirstClassCommercial = "FIRST CLASS COMMERCIAL"
	ServicePriority             = "PRIORITY"
	ServicePriorityCommercial   = "PRIORITY COMMERCIAL"
	ServiceExpress              = "EXPRESS"
	ServiceExpressCommercial    = "EXPRESS COMMERCIAL"
	ServiceParcel               = "PARCEL"
	ServiceMedia                = "MEDIA"
	ServiceLibrary              = "LIBRARY"
	ServiceAll                  = "ALL"
	ServiceOnline               = "ONLINE"

	MailTypeLetter   = "LETTER"
	MailTypeFlat     = "FLAT"
	MailTypeParcel   = "PARCEL"
	MailTypePostcard = "POSTCARD"
	MailTypePackage  = "PACKAGE"

	ContainerVariable          = "VARIABLE"
	ContainerFlatRateEnvelope  = "FLAT RATE ENVELOPE"
	ContainerFlatRateBox       = "FLAT RATE BOX"
	ContainerSmallFlatRateBox  = "SM FLAT RATE BOX"
	ContainerMediumFlatRateBox = "MD FLAT RATE BOX"
	ContainerLargeFlatRateBox  = "LG FLAT RATE BOX"
	ContainerRectangular       = "RECTANGULAR"
	ContainerNonRectangular    = "NONRECTANGULAR"

	SizeLarge   = "LARGE"
	SizeRegular = "REGULAR"
)

// RatePackage is a package in a Rate request.
type RatePackage struct {
	fieldSet
}

func NewRatePackage() *RatePackage {
	return &RatePackage{}
}

func (p *RatePackage) SetService(v string) *RatePackage {
	return p.SetField("Service", v)
}

func (p *RatePackage) SetFirstClassMailType(v string) *RatePackage {
	return p.SetField("FirstClassMailType", v)
}

func (p *RatePackage) SetZipOrigination(v string) *RatePackage {
	return p.SetField("ZipOrigination", v)
}

func (p *RatePackage) SetZipDestination(v string) *RatePackage {
	return p.SetField("ZipDestination", v)
}

func (p *RatePackage) SetPounds(v int) *RatePackage {
	return p.SetField("Pounds", v)
}

func (p *RatePackage) SetOunces(v int) *RatePackage {
	return p.SetField("Ounces", v)
}

func (p *RatePackage) SetContainer(v string) *RatePackage {
	return p.SetField("Container", v)
}

func (p *RatePackage) SetSize(v string) *RatePackage {
	return p.SetField("Size", v)
}

func (p *RatePackage) SetField(key string, v any) *RatePackage {
	p.set(key, v)
	return p
}

func (p *RatePackage) Fields() *ir.Node {
	return p.fields()
}

// Rate prices packages, domestic (RateV4) or international (IntlRateV2).
type Rate struct {
	International bool

	req *ir.Node
}

func (r *Rate) API() API {
	if r.International {
		return APIIntlRateV2
	}
	return APIRateV4
}

// AddPackage adds a package. An empty id is replaced by the package's
// position in the request, counting from 1.
func (r *Rate) AddPackage(p *RatePackage, id string) {
	if r.req == nil {
		r.req = ir.Object()
	}
	group(r.req, "Package", p.Fields(), id)
}

// AddExtraOption adds a top level field, such as Revision, to the request.
// Repeating key adds to a group.
func (r *Rate) AddExtraOption(key, value string) {
	if r.req == nil {
		r.req = ir.Object()
	}
	r.req.Append(key, ir.FromString(value))
}

func (r *Rate) Fields() *ir.Node { return clone(r.req) }

// ServiceStandards requests delivery time estimates between two ZIP codes
// for First-Class Mail (APIFirstClassMail) or Priority Mail (APIPriorityMail).
type ServiceStandards struct {
	Mail           API
	OriginZip      string
	DestinationZip string
}

func (s *ServiceStandards) API() API {
	if s.Mail == "" {
		return APIFirstClassMail
	}
	return s.Mail
}

func (s *ServiceStandards) Fields() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "OriginZip", Val: ir.FromString(s.OriginZip)},
		{Key: "DestinationZip", Val: ir.FromString(s.DestinationZip)},
	})
}
