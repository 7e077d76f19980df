package usps

import (
	"fmt"
	"sort"
	"strings"
)

// API names a USPS Web Tools API, as sent in the API form field.
type API string

const (
	APIRateV2                          API = "RateV2"
	APIRateV4                          API = "RateV4"
	APIIntlRateV2                      API = "IntlRateV2"
	APIVerify                          API = "Verify"
	APIZipCodeLookup                   API = "ZipCodeLookup"
	APICityStateLookup                 API = "CityStateLookup"
	APITrackV2                         API = "TrackV2"
	APIFirstClassMail                  API = "FirstClassMail"
	APISDCGetLocations                 API = "SDCGetLocations"
	APIExpressMailLabel                API = "ExpressMailLabel"
	APIPriorityMail                    API = "PriorityMail"
	APIOpenDistributePriorityV2        API = "OpenDistributePriorityV2"
	APIOpenDistributePriorityV2Certify API = "OpenDistributePriorityV2Certify"
	APIExpressMailIntl                 API = "ExpressMailIntl"
	APIPriorityMailIntl                API = "PriorityMailIntl"
	APIFirstClassMailIntl              API = "FirstClassMailIntl"
)

var requestRoots = map[API]string{
	APIRateV2:                          "RateV2Request",
	APIRateV4:                          "RateV4Request",
	APIIntlRateV2:                      "IntlRateV2Request",
	APIVerify:                          "AddressValidateRequest",
	APIZipCodeLookup:                   "ZipCodeLookupRequest",
	APICityStateLookup:                 "CityStateLookupRequest",
	APITrackV2:                         "TrackFieldRequest",
	APIFirstClassMail:                  "FirstClassMailRequest",
	APISDCGetLocations:                 "SDCGetLocationsRequest",
	APIExpressMailLabel:                "ExpressMailLabelRequest",
	APIPriorityMail:                    "PriorityMailRequest",
	APIOpenDistributePriorityV2:        "OpenDistributePriorityV2.0Request",
	APIOpenDistributePriorityV2Certify: "OpenDistributePriorityV2.0CertifyRequest",
	APIExpressMailIntl:                 "ExpressMailIntlRequest",
	APIPriorityMailIntl:                "PriorityMailIntlRequest",
	APIFirstClassMailIntl:              "FirstClassMailIntlRequest",
}

func ParseAPI(v string) (API, error) {
	api := API(v)
	if _, ok := requestRoots[api]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAPI, v)
	}
	return api, nil
}

// APIs returns the known APIs sorted by name.
func APIs() []API {
	res := make([]API, 0, len(requestRoots))
	for api := range requestRoots {
		res = append(res, api)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (a API) String() string { return string(a) }

// RequestRoot returns the root element name of requests to a.
func (a API) RequestRoot() (string, error) {
	root, ok := requestRoots[a]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAPI, string(a))
	}
	return root, nil
}

// ResponseRoot returns the root element name of successful responses from
// a: the request root with "Request" replaced by "Response".
func (a API) ResponseRoot() (string, error) {
	root, err := a.RequestRoot()
	if err != nil {
		return "", err
	}
	return strings.Replace(root, "Request", "Response", -1), nil
}
