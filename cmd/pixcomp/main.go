package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/pixcomp"
	"github.com/esimov/pixcomp/imop"
	"github.com/esimov/pixcomp/utils"
)

const HelpBanner = `
┌─┐┬─┐ ┬┌─┐┌─┐┌┬┐┌─┐
├─┘│┌┴┬┘│  │ ││││├─┘
┴  ┴┴ └─└─┘└─┘┴ ┴┴

Layer compositing tool.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	proc := pixcomp.NewProcessor()

	var (
		// Flags
		source      = flag.String("in", pipeName, "Source image or directory")
		destination = flag.String("out", pipeName, "Destination image or directory")
		config      = flag.String("config", "", "TOML recipe with the compositing options")
		writeConfig = flag.String("write-config", "", "Write the effective recipe to this file and exit")
		listModes   = flag.Bool("modes", false, "List the supported blend modes")
		workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
	)
	flag.StringVar(&proc.Overlay, "overlay", proc.Overlay, "Overlay image path or URL")
	flag.StringVar(&proc.Color, "color", proc.Color, "Solid fill colour (#rrggbb[aa]) used when no overlay is given")
	flag.StringVar(&proc.MaskPath, "mask", proc.MaskPath, "Mask image path or URL")
	flag.StringVar(&proc.Mode, "mode", proc.Mode, "Blend mode")
	flag.StringVar(&proc.Tier, "tier", proc.Tier, "Precision tier: fast or perfect")
	flag.IntVar(&proc.Opacity, "opacity", proc.Opacity, "Layer opacity (0-255)")
	flag.IntVar(&proc.X, "x", proc.X, "Overlay horizontal offset")
	flag.IntVar(&proc.Y, "y", proc.Y, "Overlay vertical offset")
	flag.Float64Var(&proc.Scale, "scale", proc.Scale, "Overlay scale factor")
	flag.BoolVar(&proc.InvertMask, "invert", proc.InvertMask, "Invert the coverage mask")
	flag.IntVar(&proc.Feather, "feather", proc.Feather, "Feather radius of the coverage mask")
	flag.StringVar(&proc.Select, "select", proc.Select, "Flood fill seed on the backdrop (x,y)")
	flag.StringVar(&proc.Bounds, "bounds", proc.Bounds, "Limit the flood fill to a region (x,y,w,h)")
	flag.IntVar(&proc.Tolerance, "tolerance", proc.Tolerance, "Flood fill tolerance (squared color distance)")
	flag.BoolVar(&proc.Contiguous, "contiguous", proc.Contiguous, "Grow the selection through adjacent pixels only")
	flag.BoolVar(&proc.FaceDetect, "face", proc.FaceDetect, "Use face detection as mask")
	flag.StringVar(&proc.Classifier, "cc", proc.Classifier, "Cascade classifier")
	flag.Float64Var(&proc.FaceAngle, "angle", proc.FaceAngle, "Plane rotated faces angle")
	flag.StringVar(&proc.Stroke, "stroke", proc.Stroke, "Outline the mask with this colour (#rrggbb[aa])")
	flag.Float64Var(&proc.StrokeThreshold, "stroke-threshold", proc.StrokeThreshold, "Edge threshold of the mask outline")
	flag.BoolVar(&proc.Debug, "debug", proc.Debug, "Output the coverage mask")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listModes {
		for _, m := range imop.Modes() {
			fmt.Printf("%2d  %s\n", int(m), m)
		}
		return
	}

	if *config != "" {
		if err := proc.LoadConfig(*config); err != nil {
			log.Fatalf(utils.DecorateText("%v", utils.ErrorMessage), err)
		}
		// Options given on the command line win over the recipe.
		flag.Parse()
	}

	if *writeConfig != "" {
		f, err := os.Create(*writeConfig)
		if err != nil {
			log.Fatalf(utils.DecorateText("Unable to create the recipe file: %v", utils.ErrorMessage), err)
		}
		defer f.Close()
		if err := proc.WriteConfig(f); err != nil {
			log.Fatalf(utils.DecorateText("%v", utils.ErrorMessage), err)
		}
		return
	}

	if proc.FaceDetect && len(proc.Classifier) == 0 {
		log.Fatalf(utils.DecorateText("Please specify a face classifier in case you are using the -face flag!\n", utils.ErrorMessage))
	}

	op := &pixcomp.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}
	if err := proc.Execute(op); err != nil {
		log.Fatalf(
			utils.DecorateText("\nCompositing failed: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}
