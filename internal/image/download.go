package imagepkg

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/youruser/deckcodes/internal/util"
)

// DownloadImage downloads an image from URL and returns it decoded.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", url)
	}
	return img, nil
}
