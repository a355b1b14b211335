package pixcomp

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/pixcomp/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

var (
	// srcExtensions lists the backdrop formats picked up from a directory.
	srcExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}
	// dstExtensions lists the formats an image can be encoded to.
	dstExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff"}
)

// Ops describes where the backdrops are read from and the results written to.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
}

// result holds the relevant information about the compositing of a single file.
type result struct {
	path string
	err  error
}

// Execute composites every backdrop named by op. The source can be a single
// file, an URL, a pipe or a directory whose images are processed concurrently.
func (p *Processor) Execute(op *Ops) error {
	if p.Spinner == nil {
		defaultMsg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ PIXCOMP", utils.StatusMessage),
			utils.DecorateText("⇢ compositing image...", utils.DefaultMessage),
		)
		p.Spinner = utils.NewSpinner(os.Stderr, defaultMsg, time.Millisecond*80)
	}

	// The classifier is shared between the workers, load it only once.
	if p.FaceDetect {
		if err := p.loadClassifier(); err != nil {
			return err
		}
	}

	src := op.Src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if f != nil {
			defer os.Remove(f.Name())
			f.Close()
		}
		if err != nil {
			return errors.Wrap(err, "failed to load the source image")
		}
		src = f.Name()
	}

	var (
		fs  os.FileInfo
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load the source image")
	}

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		if _, err := os.Stat(op.Dst); err != nil {
			if err := os.MkdirAll(op.Dst, 0755); err != nil {
				return errors.Wrap(err, "unable to create the destination directory")
			}
		}

		// Limit the concurrently running workers to maxWorkers.
		if op.Workers <= 0 || op.Workers > maxWorkers {
			op.Workers = runtime.NumCPU()
		}

		// Process recursively the image files from the specified directory concurrently.
		ch := make(chan result)
		done := make(chan interface{})
		defer close(done)

		paths, errc := walkDir(done, src, srcExtensions)

		var wg sync.WaitGroup
		wg.Add(op.Workers)
		for i := 0; i < op.Workers; i++ {
			go func() {
				defer wg.Done()
				op.consumer(p, op.Dst, ch, done, paths)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		// Consume the channel values.
		var failed int
		for res := range ch {
			if res.err != nil {
				failed++
			}
			op.printOpStatus(res.path, res.err)
		}
		if err := <-errc; err != nil {
			return err
		}
		if failed > 0 {
			return errors.Errorf("%d image(s) could not be composited", failed)
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		ext := strings.ToLower(filepath.Ext(op.Dst))
		if !utils.Contains(dstExtensions, ext) && op.Dst != op.PipeName {
			return errors.Errorf("%v file type not supported", ext)
		}

		err := op.process(p, src, op.Dst)
		op.printOpStatus(op.Dst, err)
		if err != nil {
			return err
		}

	default:
		return errors.Errorf("%s is neither a file nor a directory", op.Src)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// consumer reads the path names from the paths channel and composites the layer over each image.
func (op *Ops) consumer(
	p *Processor,
	dest string,
	res chan<- result,
	done <-chan interface{},
	paths <-chan string,
) {
	for src := range paths {
		dst := filepath.Join(dest, filepath.Base(src))
		if strings.EqualFold(filepath.Ext(dst), ".webp") {
			dst = strings.TrimSuffix(dst, filepath.Ext(dst)) + ".png"
		}
		err := op.process(p, src, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// process calls the processor over the source image and returns the error in case exists.
func (op *Ops) process(p *Processor, in, out string) error {
	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ PIXCOMP", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the image has been composited successfully ✔", utils.SuccessMessage),
	)
	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ PIXCOMP", utils.StatusMessage),
		utils.DecorateText("compositing image failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	finished := make(chan struct{})
	defer func() {
		signal.Stop(signalChan)
		close(finished)
	}()
	go func() {
		select {
		case <-finished:
		case <-signalChan:
			p.Spinner.RestoreCursor()
			if f, ok := dst.(*os.File); ok && f != os.Stdout {
				os.Remove(f.Name())
			}
			os.Exit(1)
		}
	}()

	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	defer func() {
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	// Start the progress indicator.
	p.Spinner.Start()
	err = p.Process(src, dst)
	if err != nil {
		// remove the generated image file in case of an error
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			os.Remove(f.Name())
		}
		p.Spinner.SetStopMsg(errorMsg)
	} else {
		p.Spinner.SetStopMsg(successMsg)
	}
	// Stop the progress indicator.
	p.Spinner.Stop()

	return err
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		src, err = os.Open(in)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unable to open the source file")
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			if f, ok := src.(*os.File); ok && f != os.Stdin {
				f.Close()
			}
			return nil, nil, errors.Wrap(err, "unable to create the destination file")
		}
	}
	return src, dst, nil
}

// printOpStatus displays the relevant information about the compositing process.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s%s",
			utils.DecorateText("\nError compositing the image: "+filepath.Base(fname), utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe image has been saved as: %s %s\n\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan interface{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			if !utils.Contains(srcExts, strings.ToLower(filepath.Ext(f.Name()))) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
