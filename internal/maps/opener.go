package maps

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/browser"
	"github.com/pkg/errors"

	"hunt/internal/hunt"
)

// Opener shows a location link to the player.
type Opener interface {
	Open(url string) error
}

// BrowserOpener launches the system browser.
type BrowserOpener struct{}

var browserOutput sync.Once

// Open hands url to the platform's browser launcher.
func (BrowserOpener) Open(url string) error {
	// The launcher's own output would corrupt the terminal UI.
	browserOutput.Do(func() {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	})
	return errors.Wrapf(browser.OpenURL(url), "open %s", url)
}

// PrintOpener writes the link instead of launching anything.
type PrintOpener struct {
	Out io.Writer
}

// Open prints url.
func (p PrintOpener) Open(url string) error {
	if p.Out == nil {
		return nil
	}
	_, err := fmt.Fprintf(p.Out, "Next location: %s\n", url)
	return err
}

// OpenCoordinates builds the maps link for coordinates and opens it.
func OpenCoordinates(opener Opener, coordinates hunt.Coordinates) (string, error) {
	url := hunt.MapURL(coordinates)
	if opener == nil {
		return url, nil
	}
	return url, opener.Open(url)
}
