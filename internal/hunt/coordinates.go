package hunt

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MapsURL is the base of the link opened for the next location.
const MapsURL = "https://maps.google.com/"

// Coordinates is a location reference as sent by the server, rendered as "lat,lng".
type Coordinates string

// String returns the coordinates in their display form.
func (c Coordinates) String() string {
	return string(c)
}

// IsZero reports whether no location was supplied.
func (c Coordinates) IsZero() bool {
	return strings.TrimSpace(string(c)) == ""
}

// UnmarshalJSON accepts a string, a [lat, lng] array or a {lat, lng} object.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty coordinates")
	}
	switch trimmed[0] {
	case 'n':
		*c = ""
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*c = Coordinates(strings.TrimSpace(value))
		return nil
	case '[':
		var pair []float64
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return errors.Wrap(err, "coordinates array")
		}
		if len(pair) != 2 {
			return errors.Errorf("coordinates array must have 2 values, got %d", len(pair))
		}
		*c = formatPair(pair[0], pair[1])
		return nil
	case '{':
		var point struct {
			Lat       *float64 `json:"lat"`
			Lng       *float64 `json:"lng"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		}
		if err := json.Unmarshal(trimmed, &point); err != nil {
			return errors.Wrap(err, "coordinates object")
		}
		lat, lng := firstSet(point.Lat, point.Latitude), firstSet(point.Lng, point.Longitude)
		if lat == nil || lng == nil {
			return errors.New("coordinates object needs lat and lng")
		}
		*c = formatPair(*lat, *lng)
		return nil
	default:
		return errors.Errorf("unsupported coordinates %s", string(trimmed))
	}
}

// MarshalJSON writes the coordinates as a plain string.
func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// MapURL builds the maps link for a location.
func MapURL(coordinates Coordinates) string {
	return MapsURL + "?q=" + url.QueryEscape(coordinates.String())
}

func firstSet(values ...*float64) *float64 {
	for _, value := range values {
		if value != nil {
			return value
		}
	}
	return nil
}

func formatPair(lat, lng float64) Coordinates {
	return Coordinates(strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64))
}
