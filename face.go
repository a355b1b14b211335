package pixcomp

import (
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/esimov/pixcomp/mask"
	"github.com/esimov/pixcomp/pixel"
	"github.com/esimov/pixcomp/utils"
	"github.com/pkg/errors"
)

// minFaceQuality is the detection score below which a face is discarded.
const minFaceQuality = 5.0

// loadClassifier unpacks the cascade file given by the Classifier option.
func (p *Processor) loadClassifier() error {
	if p.faceDetector != nil {
		return nil
	}
	if p.Classifier == "" {
		return errors.New("face detection requires a cascade classifier")
	}
	cascade, err := os.ReadFile(p.Classifier)
	if err != nil {
		return errors.Wrap(err, "could not read the cascade file")
	}

	// Unpack the binary file. This will return the number of cascade trees,
	// the tree depth, the threshold and the prediction from tree's leaf nodes.
	fd, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return errors.Wrap(err, "error unpacking the cascade file")
	}
	p.faceDetector = fd
	return nil
}

// detectFaces runs the face classifier over the buffer.
func (p *Processor) detectFaces(buf *pixel.Buffer) []pigo.Detection {
	cParams := pigo.CascadeParams{
		MinSize:     20,
		MaxSize:     utils.Max(buf.Width, buf.Height),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,

		ImageParams: pigo.ImageParams{
			Pixels: grayscale(buf),
			Rows:   buf.Height,
			Cols:   buf.Width,
			Dim:    buf.Width,
		},
	}

	// Run the classifier over the obtained leaf nodes and return the detection results.
	// The result contains quadruplets representing the row, column, scale and detection score.
	faces := p.faceDetector.RunCascade(cParams, p.FaceAngle)

	// Calculate the intersection over union (IoU) of two clusters.
	return p.faceDetector.ClusterDetections(faces, 0.2)
}

// faceMask marks the square around every detected face with a good enough
// score in a BINARY mask of the given size.
func faceMask(width, height int, faces []pigo.Detection) *mask.Mask {
	m := mask.New(mask.Binary, width, height)
	bounds := m.Bounds()
	for _, face := range faces {
		if face.Q < minFaceQuality {
			continue
		}
		r := pixel.Rect{
			X: face.Col - face.Scale/2,
			Y: face.Row - face.Scale/2,
			W: face.Scale,
			H: face.Scale,
		}.Intersect(bounds)

		for y := r.Y; y < r.Bottom(); y++ {
			row := m.Data[y*m.Pitch+r.X : y*m.Pitch+r.Right()]
			for x := range row {
				row[x] = 1
			}
		}
	}
	return m
}
