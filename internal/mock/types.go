package mock

// Hunt is a set of stops served by the mock endpoint.
type Hunt struct {
	Stops []Stop `yaml:"stops"`
}

// Stop is one QR code location: its question, the accepted answer and where it leads.
type Stop struct {
	ID           string   `yaml:"id"`
	Question     string   `yaml:"question"`
	ResponseType string   `yaml:"response_type"`
	Choices      []string `yaml:"choices"`
	Answer       string   `yaml:"answer"`
	Coordinates  string   `yaml:"coordinates"`
}

// Lookup finds a stop by scan ID.
func (h Hunt) Lookup(id string) (Stop, bool) {
	for _, stop := range h.Stops {
		if stop.ID == id {
			return stop, true
		}
	}
	return Stop{}, false
}
