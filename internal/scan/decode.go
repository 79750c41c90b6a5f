package scan

import (
	"image"
	// Registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/pkg/errors"
)

var (
	ErrNoCode       = errors.New("no QR code found")
	ErrUnsupported  = errors.New("unsupported image format")
	imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}
)

// IsImagePath reports whether a file name looks like a decodable capture.
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// DecodeFile reads an image from disk and returns the QR payload it contains.
func DecodeFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open capture")
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", errors.Wrapf(ErrUnsupported, "%s", path)
		}
		return "", errors.Wrapf(err, "decode image %s", path)
	}
	return DecodeImage(img)
}

// DecodeImage returns the payload of the first QR code in img.
func DecodeImage(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Wrap(err, "prepare bitmap")
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", errors.Wrap(ErrNoCode, err.Error())
	}
	return result.GetText(), nil
}
