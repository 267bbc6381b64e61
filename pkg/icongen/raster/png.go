package raster

import (
	"bytes"
	"image"
	"image/png"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// EncodePNG encodes img as PNG with best compression.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode png")
	}
	return buf.Bytes(), nil
}

// ReencodePNG decodes PNG data and re-encodes it with best compression.
// This is the optimize pass: a freshly rasterized buffer round-trips
// through the decoder so the final file carries none of the
// intermediate encoder's padding.
func ReencodePNG(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "decode png")
	}
	return EncodePNG(img)
}

// Dimensions reports the width and height of encoded PNG data without
// decoding the pixel payload.
func Dimensions(data []byte) (w, h int, err error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeEncode, err, "decode png header")
	}
	return cfg.Width, cfg.Height, nil
}
