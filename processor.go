package pixcomp

import (
	"io"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
	"github.com/esimov/pixcomp/imop"
	"github.com/esimov/pixcomp/mask"
	"github.com/esimov/pixcomp/pixel"
	"github.com/esimov/pixcomp/selection"
	"github.com/esimov/pixcomp/utils"
	"github.com/pkg/errors"
)

// Processor options
type Processor struct {
	// Overlay is the path or URL of the layer composited over the backdrop.
	Overlay string `toml:"overlay"`
	// Color is a solid hex colour used as the layer when no overlay is given.
	Color    string  `toml:"color"`
	MaskPath string  `toml:"mask"`
	Mode     string  `toml:"mode"`
	Tier     string  `toml:"tier"`
	Opacity  int     `toml:"opacity"`
	X        int     `toml:"x"`
	Y        int     `toml:"y"`
	Scale    float64 `toml:"scale"`

	InvertMask bool `toml:"invert_mask"`
	Feather    int  `toml:"feather"`

	// Select seeds a flood fill selection on the backdrop, given as "x,y".
	Select string `toml:"select"`
	// Bounds limits the flood fill to a "x,y,w,h" region of the backdrop.
	Bounds     string `toml:"bounds"`
	Tolerance  int    `toml:"tolerance"`
	Contiguous bool   `toml:"contiguous"`

	FaceDetect bool    `toml:"face_detect"`
	Classifier string  `toml:"classifier"`
	FaceAngle  float64 `toml:"face_angle"`

	// Stroke outlines the coverage mask with the given hex colour.
	Stroke          string  `toml:"stroke"`
	StrokeThreshold float64 `toml:"stroke_threshold"`

	// Debug writes the coverage mask instead of the composited image.
	Debug bool `toml:"debug"`

	Spinner *utils.Spinner `toml:"-"`

	faceDetector *pigo.Pigo
}

// NewProcessor returns a processor compositing a fully opaque layer in
// source-over mode.
func NewProcessor() *Processor {
	return &Processor{
		Mode:            imop.SourceOver.String(),
		Tier:            imop.Fast.String(),
		Opacity:         255,
		Scale:           1,
		Contiguous:      true,
		StrokeThreshold: 64,
	}
}

// blendFunc resolves the Mode and Tier options.
func (p *Processor) blendFunc() (imop.Func, error) {
	mode, err := imop.ParseMode(p.Mode)
	if err != nil {
		return nil, err
	}
	tier, err := imop.ParseTier(p.Tier)
	if err != nil {
		return nil, err
	}
	fn, _ := imop.Lookup(mode, tier)
	return fn, nil
}

func (p *Processor) opacity() uint8 {
	return uint8(utils.Clamp(p.Opacity, 0, 255))
}

// loadOverlay decodes the overlay layer and applies the scale factor.
func (p *Processor) loadOverlay() (*pixel.Buffer, error) {
	img, err := decodeFile(p.Overlay)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load the overlay")
	}
	if p.Scale > 0 && p.Scale != 1 {
		w := int(float64(img.Bounds().Dx()) * p.Scale)
		if w < 1 {
			return nil, errors.Errorf("scale factor %.2f leaves an empty overlay", p.Scale)
		}
		img = imaging.Resize(img, w, 0, imaging.NearestNeighbor)
	}
	return toBuffer(img), nil
}

// coverage intersects every configured mask source into a single ALPHA mask
// sized to the backdrop. It returns nil when no mask source is configured.
func (p *Processor) coverage(dst *pixel.Buffer) (*mask.Mask, error) {
	var cov *mask.Mask
	merge := func(src *mask.Mask) {
		if cov == nil {
			cov = mask.New(mask.Alpha, dst.Width, dst.Height)
			mask.InvertAlpha(cov.Data)
		}
		mask.Merge(cov.Data, cov.Pitch, src, mask.NewMergeOptions(dst.Width, dst.Height))
	}

	if p.MaskPath != "" {
		img, err := decodeFile(p.MaskPath)
		if err != nil {
			return nil, errors.Wrap(err, "cannot load the mask")
		}
		merge(alphaMask(img))
	}

	if p.Select != "" {
		x, y, err := utils.ParsePoint(p.Select)
		if err != nil {
			return nil, err
		}
		opt := selection.Options{
			X:          x,
			Y:          y,
			Tolerance:  p.Tolerance,
			Contiguous: p.Contiguous,
		}
		if p.Bounds != "" {
			bx, by, bw, bh, err := utils.ParseRect(p.Bounds)
			if err != nil {
				return nil, err
			}
			opt.Bounds = &pixel.Rect{X: bx, Y: by, W: bw, H: bh}
		}
		res := selection.FloodFill(dst, opt)
		if res == nil {
			return nil, errors.Errorf("nothing could be selected at %d,%d", x, y)
		}
		merge(place(&res.Selection, dst.Bounds()))
	}

	if p.FaceDetect {
		if err := p.loadClassifier(); err != nil {
			return nil, err
		}
		merge(faceMask(dst.Width, dst.Height, p.detectFaces(dst)))
	}

	if cov != nil && p.Feather > 0 {
		cov = mask.Feather(cov, p.Feather)
	}
	return cov, nil
}

// place positions the selection mask inside a mask covering bounds.
func place(sel *mask.Selection, bounds pixel.Rect) *mask.Mask {
	return mask.Extract(sel.Mask, pixel.Rect{
		X: bounds.X - sel.X,
		Y: bounds.Y - sel.Y,
		W: bounds.W,
		H: bounds.H,
	})
}

// Composite applies the configured layer, masks and stroke to dst in place.
func (p *Processor) Composite(dst *pixel.Buffer) error {
	if p.Overlay == "" && p.Color == "" && p.Stroke == "" && !p.Debug {
		return errors.New("no overlay, fill colour or stroke given")
	}
	blend, err := p.blendFunc()
	if err != nil {
		return err
	}
	cov, err := p.coverage(dst)
	if err != nil {
		return err
	}

	if p.Debug {
		if cov == nil {
			return errors.New("no mask to debug")
		}
		*dst = *threshold(cov.Data, dst.Width, dst.Height)
		return nil
	}

	opt := imop.Options{
		X:          p.X,
		Y:          p.Y,
		Mask:       cov,
		MX:         p.X,
		MY:         p.Y,
		InvertMask: p.InvertMask,
		Alpha:      p.opacity(),
		Blend:      blend,
	}

	switch {
	case p.Overlay != "":
		layer, err := p.loadOverlay()
		if err != nil {
			return err
		}
		opt.W, opt.H = layer.Width, layer.Height
		imop.Blit(dst, layer, opt)
	case p.Color != "":
		c, err := hexColor(p.Color)
		if err != nil {
			return err
		}
		opt.X, opt.Y, opt.MX, opt.MY = 0, 0, 0, 0
		opt.W, opt.H = dst.Width, dst.Height
		imop.Fill(dst, c, opt)
	}

	if p.Stroke != "" {
		if cov == nil {
			return errors.New("stroke requires a mask, a selection or face detection")
		}
		c, err := hexColor(p.Stroke)
		if err != nil {
			return err
		}
		edges := mask.Outline(cov, p.StrokeThreshold)
		sopt := imop.NewOptions(dst.Width, dst.Height)
		sopt.Mask = edges
		imop.Fill(dst, c, sopt)
	}
	return nil
}

// Process decodes the backdrop from r, composites the layer over it and
// encodes the result into w.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, err := decodeImg(r)
	if err != nil {
		return err
	}
	dst := toBuffer(img)
	if err := p.Composite(dst); err != nil {
		return err
	}
	return encodeImg(w, toNRGBA(dst))
}

func hexColor(s string) (pixel.Color32, error) {
	r, g, b, a, err := utils.ParseHexColor(s)
	if err != nil {
		return 0, err
	}
	return pixel.Pack(r, g, b, a), nil
}
