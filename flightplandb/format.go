package flightplandb

import "fmt"

// Format identifies the representation a plan export is requested in. The
// API selects the representation from the Accept header; everything except
// FormatNative is returned as opaque text or binary data.
type Format string

const (
	// FormatNative decodes the JSON response into domain records.
	FormatNative Format = "native"

	FormatJSON           Format = "json"
	FormatXML            Format = "xml"
	FormatCSV            Format = "csv"
	FormatPDF            Format = "pdf"
	FormatKML            Format = "kml"
	FormatXPlane         Format = "xplane"
	FormatXPlane11       Format = "xplane11"
	FormatFS9            Format = "fs9"
	FormatFSX            Format = "fsx"
	FormatSquawkbox      Format = "squawkbox"
	FormatXFMC           Format = "xfmc"
	FormatPMDG           Format = "pmdg"
	FormatAirbusX        Format = "airbusx"
	FormatQualityWings   Format = "qualitywings"
	FormatIFly747        Format = "ifly747"
	FormatFlightGear     Format = "flightgear"
	FormatTFDi717        Format = "tfdi717"
	FormatInfiniteFlight Format = "infiniteflight"
)

var formatMediaTypes = map[Format]string{
	FormatNative:         "application/vnd.fpd.v1+json",
	FormatJSON:           "application/vnd.fpd.v1+json",
	FormatXML:            "application/vnd.fpd.v1+xml",
	FormatCSV:            "text/vnd.fpd.export.v1.csv+csv",
	FormatPDF:            "application/vnd.fpd.export.v1.pdf",
	FormatKML:            "application/vnd.fpd.export.v1.kml+xml",
	FormatXPlane:         "application/vnd.fpd.export.v1.xplane",
	FormatXPlane11:       "application/vnd.fpd.export.v1.xplane11",
	FormatFS9:            "application/vnd.fpd.export.v1.fs9",
	FormatFSX:            "application/vnd.fpd.export.v1.fsx",
	FormatSquawkbox:      "application/vnd.fpd.export.v1.squawkbox",
	FormatXFMC:           "application/vnd.fpd.export.v1.xfmc",
	FormatPMDG:           "application/vnd.fpd.export.v1.pmdg",
	FormatAirbusX:        "application/vnd.fpd.export.v1.airbusx",
	FormatQualityWings:   "application/vnd.fpd.export.v1.qualitywings",
	FormatIFly747:        "application/vnd.fpd.export.v1.ifly747",
	FormatFlightGear:     "application/vnd.fpd.export.v1.flightgear",
	FormatTFDi717:        "application/vnd.fpd.export.v1.tfdi717",
	FormatInfiniteFlight: "application/vnd.fpd.export.v1.infiniteflight",
}

// mediaType returns the Accept value for the format.
func (f Format) mediaType() (string, error) {
	if f == "" {
		return formatMediaTypes[FormatNative], nil
	}
	mt, ok := formatMediaTypes[f]
	if !ok {
		return "", fmt.Errorf("%q is not a valid export format", string(f))
	}
	return mt, nil
}

// Valid reports whether f names a known export format.
func (f Format) Valid() bool {
	_, ok := formatMediaTypes[f]
	return ok
}
