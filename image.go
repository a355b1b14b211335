package pixcomp

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/pixcomp/mask"
	"github.com/esimov/pixcomp/pixel"
	"github.com/esimov/pixcomp/utils"
	"github.com/pkg/errors"

	_ "golang.org/x/image/webp"
)

// decodeImg decodes an image stream into a zero based NRGBA image.
// EXIF orientation tags are honored.
func decodeImg(r io.Reader) (*image.NRGBA, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the image")
	}
	return imgToNRGBA(src), nil
}

// decodeFile decodes the image found at path, which can be a local file or an URL.
func decodeFile(path string) (*image.NRGBA, error) {
	if utils.IsValidUrl(path) {
		f, err := utils.DownloadImage(path)
		if f != nil {
			defer os.Remove(f.Name())
			defer f.Close()
		}
		if err != nil {
			return nil, err
		}
		return decodeImg(f)
	}

	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", path)
	}
	if !strings.Contains(ctype, "image") {
		return nil, errors.Errorf("%s is not an image file", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", path)
	}
	defer f.Close()

	return decodeImg(f)
}

// encodeImg encodes img into w. The format is derived from the file extension
// when w is a file; everything else receives a PNG stream.
func encodeImg(w io.Writer, img image.Image) error {
	format := imaging.PNG
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		var err error
		format, err = imaging.FormatFromFilename(f.Name())
		if err != nil {
			return errors.Wrapf(err, "cannot encode %s", filepath.Base(f.Name()))
		}
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(100))
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}

// toBuffer copies the pixels of a zero based NRGBA image into a pixel buffer.
func toBuffer(img *image.NRGBA) *pixel.Buffer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	buf := pixel.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		si := img.PixOffset(0, y)
		row := buf.Pix[y*w : (y+1)*w]
		for x := range row {
			s := img.Pix[si : si+4 : si+4]
			row[x] = pixel.Pack(s[0], s[1], s[2], s[3])
			si += 4
		}
	}
	return buf
}

// toNRGBA is the reverse of toBuffer.
func toNRGBA(buf *pixel.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i, c := range buf.Pix {
		d := img.Pix[i*4 : i*4+4 : i*4+4]
		d[0], d[1], d[2], d[3] = c.Channels()
	}
	return img
}

// alphaMask turns a mask image into an ALPHA coverage mask. Images carrying
// transparency contribute their alpha channel, opaque ones their luminance.
func alphaMask(img *image.NRGBA) *mask.Mask {
	buf := toBuffer(img)
	m := mask.New(mask.Alpha, buf.Width, buf.Height)

	opaque := true
	for _, c := range buf.Pix {
		if c.A() != 0xff {
			opaque = false
			break
		}
	}
	if opaque {
		copy(m.Data, grayscale(buf))
		return m
	}
	for i, c := range buf.Pix {
		m.Data[i] = c.A()
	}
	return m
}
