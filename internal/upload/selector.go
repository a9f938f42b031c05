package upload

import (
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"strconv"

	"github.com/gabriel-vasile/mimetype"

	"sharehub/internal/errors"
	"sharehub/internal/model"
)

// MaxPictures is how many images a listing can carry.
const MaxPictures = 2

// MaxPictureSize bounds a single selected file.
const MaxPictureSize = 5 << 20

// BodyLimit bounds a whole listing request. It fits a dozen full-size files
// plus the form fields, so oversized selections still reach Select.
const BodyLimit = "64M"

// FormLimit bounds every other request body.
const FormLimit = "2M"

var allowedTypes = []string{"image/png", "image/jpeg"}

// Select keeps the first MaxPictures files in their original order.
func Select(files []*multipart.FileHeader) []*multipart.FileHeader {
	if len(files) > MaxPictures {
		return files[:MaxPictures]
	}
	return files
}

// Load reads the selected files into memory. The returned slice is bounded by
// MaxPictures. An empty selection yields errors.ErrNoPictures.
func Load(files []*multipart.FileHeader) ([]model.UploadFile, error) {
	selected := Select(files)
	if len(selected) == 0 {
		return nil, errors.ErrNoPictures
	}

	out := make([]model.UploadFile, 0, len(selected))
	for _, fh := range selected {
		f, err := read(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func read(fh *multipart.FileHeader) (model.UploadFile, error) {
	src, err := fh.Open()
	if err != nil {
		return model.UploadFile{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxPictureSize+1))
	if err != nil {
		return model.UploadFile{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	if len(data) > MaxPictureSize {
		return model.UploadFile{}, fmt.Errorf("%s: %w", fh.Filename, errors.ErrUnsupportedPicture)
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedTypes...) {
		return model.UploadFile{}, fmt.Errorf("%s is %s: %w", fh.Filename, mt.String(), errors.ErrUnsupportedPicture)
	}

	return model.UploadFile{
		Name:        fh.Filename,
		ContentType: mt.String(),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes renders a file size for previews, e.g. 1536 -> "1.5 KB".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	v, i := float64(n), 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + " " + sizeUnits[i]
}
