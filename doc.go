/*
Package pixcomp is a layer compositing tool built on a pixel compositing engine.
It blends an overlay image or a solid colour over a backdrop with one of the
supported blend modes, optionally gated by a coverage mask. The mask can come from
a mask image, a flood fill selection seeded on the backdrop or the faces detected
on it.

The engine itself lives in the subpackages:

	pixel      packed 32 bit pixels and pixel buffers
	imop       blend modes and the clipped, masked compositing pipeline
	mask       coverage masks and the mask algebra
	selection  flood fill selection

The package provides a command line interface, supporting various flags for the
compositing options. To check the supported commands type:

	$ pixcomp --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/pixcomp"
	)

	func main() {
		p := pixcomp.NewProcessor()
		p.Overlay = "logo.png"
		p.Mode = "multiply"

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error compositing image: %s", err.Error())
		}
	}
*/
package pixcomp
