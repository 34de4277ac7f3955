package flightplandb

import (
	"encoding/json"
	"fmt"
	"time"
)

// Domain records returned by the API. Optional fields are pointers so that
// an absent field is distinguishable from a zero value; records are plain
// data and are never mutated after decoding. Unknown response fields are
// ignored.

// StatusResponse reports execution status for calls without a richer result.
type StatusResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// User describes a registered user.
type User struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	Location       *string    `json:"location,omitempty"`
	GravatarHash   *string    `json:"gravatarHash,omitempty"`
	Joined         *time.Time `json:"joined,omitempty"`
	LastSeen       *time.Time `json:"lastSeen,omitempty"`
	PlansCount     *int       `json:"plansCount,omitempty"`
	PlansDistance  *float64   `json:"plansDistance,omitempty"`
	PlansDownloads *int       `json:"plansDownloads,omitempty"`
	PlansLikes     *int       `json:"plansLikes,omitempty"`
}

// UserSmall is the abbreviated user record returned by user search.
type UserSmall struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	Location     *string `json:"location,omitempty"`
	GravatarHash *string `json:"gravatarHash,omitempty"`
}

// Application describes the application a flight plan was created with.
type Application struct {
	ID   int     `json:"id"`
	Name *string `json:"name,omitempty"`
	URL  *string `json:"url,omitempty"`
}

// Valid Via types.
const (
	ViaSID   = "SID"
	ViaSTAR  = "STAR"
	ViaAwyHi = "AWY-HI"
	ViaAwyLo = "AWY-LO"
	ViaNAT   = "NAT"
	ViaPACOT = "PACOT"
)

// Via describes the procedure or airway leading to a route node.
type Via struct {
	Ident string `json:"ident"`
	Type  string `json:"type"`
}

// Valid route node and navaid search types.
const (
	NodeUnknown = "UKN"
	NodeAirport = "APT"
	NodeNDB     = "NDB"
	NodeVOR     = "VOR"
	NodeFix     = "FIX"
	NodeDME     = "DME"
	NodeLatLon  = "LATLON"
)

// RouteNode is one waypoint of a Route.
type RouteNode struct {
	Ident string   `json:"ident"`
	Type  string   `json:"type"`
	Lat   float64  `json:"lat"`
	Lon   float64  `json:"lon"`
	ID    *int     `json:"id,omitempty"`
	Alt   *float64 `json:"alt,omitempty"`
	Name  *string  `json:"name,omitempty"`
	Via   *Via     `json:"via,omitempty"`
}

// Route is an ordered list of nodes. East/west levels only appear inside
// NATS tracks.
type Route struct {
	Nodes      []RouteNode `json:"nodes"`
	EastLevels []string    `json:"eastLevels,omitempty"`
	WestLevels []string    `json:"westLevels,omitempty"`
}

// Cycle identifies the navdata cycle a record was built against.
type Cycle struct {
	ID      int    `json:"id"`
	Ident   string `json:"ident"`
	Year    int    `json:"year"`
	Release int    `json:"release"`
}

// Plan is a flight plan, the central record of the API.
type Plan struct {
	ID              int          `json:"id,omitempty"`
	FromICAO        *string      `json:"fromICAO"`
	ToICAO          *string      `json:"toICAO"`
	FromName        *string      `json:"fromName"`
	ToName          *string      `json:"toName"`
	FlightNumber    *string      `json:"flightNumber,omitempty"`
	Distance        *float64     `json:"distance,omitempty"`
	MaxAltitude     *float64     `json:"maxAltitude,omitempty"`
	Waypoints       *int         `json:"waypoints,omitempty"`
	Likes           *int         `json:"likes,omitempty"`
	Downloads       *int         `json:"downloads,omitempty"`
	Popularity      *int         `json:"popularity,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
	EncodedPolyline *string      `json:"encodedPolyline,omitempty"`
	CreatedAt       *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time   `json:"updatedAt,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	User            *User        `json:"user,omitempty"`
	Application     *Application `json:"application,omitempty"`
	Route           *Route       `json:"route,omitempty"`
	Cycle           *Cycle       `json:"cycle,omitempty"`
}

// PlanQuery is a plan search. Unset fields are dropped from the query string
// entirely, never sent as empty values.
type PlanQuery struct {
	// Query matches usernames, tags and flight numbers.
	Query        string `url:"q,omitempty"`
	From         string `url:"from,omitempty"`
	To           string `url:"to,omitempty"`
	FromICAO     string `url:"fromICAO,omitempty"`
	ToICAO       string `url:"toICAO,omitempty"`
	FromName     string `url:"fromName,omitempty"`
	ToName       string `url:"toName,omitempty"`
	FlightNumber string `url:"flightNumber,omitempty"`
	DistanceMin  string `url:"distanceMin,omitempty"`
	DistanceMax  string `url:"distanceMax,omitempty"`
	Tags         string `url:"tags,omitempty"`
	// IncludeRoute asks the server to include each plan's route. Requires
	// authentication.
	IncludeRoute bool `url:"includeRoute,omitempty"`
}

// GenerateQuery describes a route to generate. Unset optional fields fall
// back to the server's defaults (NAT/PACOT/airway use on, a basic jet
// profile).
type GenerateQuery struct {
	FromICAO     string   `json:"fromICAO"`
	ToICAO       string   `json:"toICAO"`
	UseNAT       *bool    `json:"useNAT,omitempty"`
	UsePACOT     *bool    `json:"usePACOT,omitempty"`
	UseAWYLO     *bool    `json:"useAWYLO,omitempty"`
	UseAWYHI     *bool    `json:"useAWYHI,omitempty"`
	CruiseAlt    *float64 `json:"cruiseAlt,omitempty"`
	CruiseSpeed  *float64 `json:"cruiseSpeed,omitempty"`
	AscentRate   *float64 `json:"ascentRate,omitempty"`
	AscentSpeed  *float64 `json:"ascentSpeed,omitempty"`
	DescentRate  *float64 `json:"descentRate,omitempty"`
	DescentSpeed *float64 `json:"descentSpeed,omitempty"`
}

// Tag is a flight plan tag with usage statistics.
type Tag struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PlanCount   int     `json:"planCount"`
	Popularity  int     `json:"popularity"`
}

// Timezone holds an airport's IANA timezone and current UTC offset in
// seconds.
type Timezone struct {
	Name   *string  `json:"name"`
	Offset *float64 `json:"offset"`
}

// Times holds the current sun times at an airport.
type Times struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
	Dawn    time.Time `json:"dawn"`
	Dusk    time.Time `json:"dusk"`
}

// RunwayEnds locates one end of a runway.
type RunwayEnds struct {
	Ident string  `json:"ident"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Valid runway navaid types.
const (
	NavaidLocILS = "LOC-ILS"
	NavaidLocLoc = "LOC-LOC"
	NavaidGS     = "GS"
	NavaidDME    = "DME"
	NavaidOM     = "OM"
	NavaidMM     = "MM"
	NavaidIM     = "IM"
)

// Navaid is a navigational aid serving a runway.
type Navaid struct {
	Ident     string   `json:"ident"`
	Type      string   `json:"type"`
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Airport   string   `json:"airport"`
	Runway    string   `json:"runway"`
	Frequency *float64 `json:"frequency"`
	Slope     *float64 `json:"slope"`
	Bearing   *float64 `json:"bearing"`
	Name      *string  `json:"name"`
	Elevation float64  `json:"elevation"`
	Range     float64  `json:"range"`
}

// Runway describes one direction of a runway; each physical strip appears
// once per end.
type Runway struct {
	Ident           string       `json:"ident"`
	Width           float64      `json:"width"`
	Length          float64      `json:"length"`
	Bearing         float64      `json:"bearing"`
	Surface         string       `json:"surface"`
	Markings        []string     `json:"markings"`
	Lighting        []string     `json:"lighting"`
	ThresholdOffset float64      `json:"thresholdOffset"`
	OverrunLength   float64      `json:"overrunLength"`
	Ends            []RunwayEnds `json:"ends"`
	Navaids         []Navaid     `json:"navaids"`
}

// Frequency is a radio frequency published for an airport.
type Frequency struct {
	Type      string  `json:"type"`
	Frequency float64 `json:"frequency"`
	Name      *string `json:"name"`
}

// Weather holds the current METAR and TAF for an airport.
type Weather struct {
	METAR *string `json:"METAR"`
	TAF   *string `json:"TAF"`
}

// Airport is the full airport record with runways, frequencies and weather.
type Airport struct {
	ICAO              string      `json:"ICAO"`
	IATA              *string     `json:"IATA"`
	Name              string      `json:"name"`
	RegionName        *string     `json:"regionName"`
	Elevation         float64     `json:"elevation"`
	Lat               float64     `json:"lat"`
	Lon               float64     `json:"lon"`
	MagneticVariation float64     `json:"magneticVariation"`
	Timezone          Timezone    `json:"timezone"`
	Times             Times       `json:"times"`
	RunwayCount       int         `json:"runwayCount"`
	Runways           []Runway    `json:"runways"`
	Frequencies       []Frequency `json:"frequencies"`
	Weather           Weather     `json:"weather"`
}

// TrackIdent is a track identifier: a letter for NATS, a number for PACOTS.
// Both decode to their string form.
type TrackIdent string

func (t *TrackIdent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TrackIdent(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = TrackIdent(n.String())
		return nil
	}
	return fmt.Errorf("track ident must be a string or number, got %s", data)
}

// Track is an organized track system entry (NATS or PACOTS).
type Track struct {
	Ident     TrackIdent `json:"ident"`
	Route     Route      `json:"route"`
	ValidFrom time.Time  `json:"validFrom"`
	ValidTo   time.Time  `json:"validTo"`
}

// SearchNavaid is a navaid as returned by navaid search, which carries less
// detail than the runway-level Navaid record.
type SearchNavaid struct {
	Ident        string  `json:"ident"`
	Type         string  `json:"type"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Elevation    float64 `json:"elevation"`
	RunwayIdent  *string `json:"runwayIdent,omitempty"`
	AirportICAO  *string `json:"airportICAO,omitempty"`
	Name         *string `json:"name,omitempty"`
}
