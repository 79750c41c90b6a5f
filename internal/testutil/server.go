package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"hunt/internal/mock"
)

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL string
	Close   func()
}

// StartMock launches the mock question endpoint for a hunt.
func StartMock(t testing.TB, h mock.Hunt) *ServerInstance {
	t.Helper()
	server := httptest.NewServer(mock.NewHandler(h, zerolog.Nop()))
	t.Cleanup(server.Close)
	return &ServerInstance{
		BaseURL: server.URL,
		Close:   server.Close,
	}
}

// SampleHunt returns a small hunt used across tests.
func SampleHunt() mock.Hunt {
	return mock.Hunt{Stops: []mock.Stop{
		{
			ID:           "eiffel",
			Question:     "In which city is this tower?",
			ResponseType: "multipleChoice",
			Choices:      []string{"Paris", "Lyon", "Marseille"},
			Answer:       "Paris",
			Coordinates:  "48.8584,2.2945",
		},
		{
			ID:           "riddle",
			Question:     "What has keys but opens no locks?",
			ResponseType: "freeText",
			Answer:       "piano",
			Coordinates:  "40.7128,-74.0060",
		},
	}}
}
