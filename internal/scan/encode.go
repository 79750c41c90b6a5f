package scan

import (
	"image"
	"image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/pkg/errors"
)

// DefaultSize is the edge length in pixels of generated codes.
const DefaultSize = 256

// Encode renders payload as a square QR code image.
func Encode(payload string, size int) (image.Image, error) {
	if payload == "" {
		return nil, errors.New("empty payload")
	}
	if size <= 0 {
		size = DefaultSize
	}
	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_ERROR_CORRECTION: "M",
		gozxing.EncodeHintType_MARGIN:           4,
	}
	matrix, err := qrcode.NewQRCodeWriter().Encode(payload, gozxing.BarcodeFormat_QR_CODE, size, size, hints)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %d byte payload", len(payload))
	}
	return matrix, nil
}

// WritePNG encodes payload as a QR code and writes it as PNG.
func WritePNG(w io.Writer, payload string, size int) error {
	img, err := Encode(payload, size)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, img), "write png")
}
