package mock

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"hunt/internal/hunt"
)

// Load reads, normalizes and validates a hunt definition file.
func Load(path string) (Hunt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Hunt{}, errors.Wrap(err, "read hunt")
	}
	return Parse(data)
}

// Parse decodes a YAML hunt definition.
func Parse(data []byte) (Hunt, error) {
	var h Hunt
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&h); err != nil {
		return Hunt{}, errors.Wrap(err, "parse hunt")
	}
	if err := decoder.Decode(&yaml.Node{}); err != io.EOF {
		if err == nil {
			return Hunt{}, errors.New("parse hunt: multiple YAML documents are not supported")
		}
		return Hunt{}, errors.Wrap(err, "parse hunt")
	}
	normalize(&h)
	if err := validate(h); err != nil {
		return Hunt{}, err
	}
	return h, nil
}

func normalize(h *Hunt) {
	for i := range h.Stops {
		stop := &h.Stops[i]
		stop.ID = strings.TrimSpace(stop.ID)
		stop.Answer = strings.TrimSpace(stop.Answer)
		stop.Coordinates = strings.TrimSpace(stop.Coordinates)
		if stop.ResponseType == "" {
			stop.ResponseType = hunt.ResponseTypeMultipleChoice
		}
	}
}

func validate(h Hunt) error {
	var problems []string
	if len(h.Stops) == 0 {
		problems = append(problems, "stops: at least one stop is required")
	}
	seen := make(map[string]bool, len(h.Stops))
	for i, stop := range h.Stops {
		field := fmt.Sprintf("stops[%d]", i)
		if stop.ID == "" {
			problems = append(problems, field+".id: required")
		} else if seen[stop.ID] {
			problems = append(problems, fmt.Sprintf("%s.id: duplicate id %q", field, stop.ID))
		}
		seen[stop.ID] = true
		if strings.TrimSpace(stop.Question) == "" {
			problems = append(problems, field+".question: required")
		}
		if stop.Answer == "" {
			problems = append(problems, field+".answer: required")
		}
		if stop.Coordinates == "" {
			problems = append(problems, field+".coordinates: required")
		}
		if stop.ResponseType == hunt.ResponseTypeMultipleChoice && stop.Answer != "" && !contains(stop.Choices, stop.Answer) {
			problems = append(problems, fmt.Sprintf("%s.answer: %q is not one of the choices", field, stop.Answer))
		}
	}
	if len(problems) > 0 {
		return errors.Errorf("invalid hunt:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == target {
			return true
		}
	}
	return false
}
