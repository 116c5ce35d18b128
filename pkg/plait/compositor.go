package plait

import(
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/abworrall/plait/pkg/pcolor"
)

// A Compositor builds a new image, one channel at a time, out of
// channels taken from the input images (or out of constants).
type Compositor struct {
	Workers    int  // how many goroutines to run; <= 0 means one per CPU
	RowsPerJob int  // how many rows each job covers; <= 0 picks something sensible
}

// A bandJob is a range of output rows, [MinY, MaxY)
type bandJob struct {
	MinY, MaxY int
}

// Composite checks all the preconditions, and then builds the output
// image. Nothing is allocated if any precondition fails.
//
// Every pixel is independent of every other, so rows are handed out in
// bands to a pool of goroutines. Each worker only writes to its own rows
// of the output, and only reads the inputs, so no locking is needed.
func (c Compositor)Composite(inputs []image.Image, f OutputFormat) (*image.NRGBA, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if err := CheckImageSizes(nil, inputs); err != nil {
		return nil, err
	}
	if err := f.Validate(len(inputs)); err != nil {
		return nil, err
	}

	size := inputs[0].Bounds().Size()
	out := image.NewNRGBA(image.Rectangle{Max: size})
	if size.X == 0 || size.Y == 0 {
		return out, nil
	}

	nWorkers := c.Workers
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}
	rowsPerJob := c.RowsPerJob
	if rowsPerJob <= 0 {
		rowsPerJob = (size.Y + nWorkers*4 - 1) / (nWorkers * 4)
	}

	var wg sync.WaitGroup
	jobsChan := make(chan bandJob, size.Y/rowsPerJob+1)

	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := newBandWorker(inputs, f, out)
			for job := range jobsChan {
				w.run(job)
			}
		}()
	}

	for y := 0; y < size.Y; y += rowsPerJob {
		maxY := y + rowsPerJob
		if maxY > size.Y { maxY = size.Y }
		jobsChan<- bandJob{y, maxY}
	}

	close(jobsChan)
	wg.Wait()

	return out, nil
}

// Composite runs a default Compositor.
func Composite(inputs []image.Image, f OutputFormat) (*image.NRGBA, error) {
	return Compositor{}.Composite(inputs, f)
}

// bandWorker holds the per-goroutine scratch space.
type bandWorker struct {
	inputs  []image.Image
	sources [4]pcolor.Source
	used    []int
	samples []pcolor.ARGB
	out     *image.NRGBA
}

func newBandWorker(inputs []image.Image, f OutputFormat, out *image.NRGBA) *bandWorker {
	return &bandWorker{
		inputs:  inputs,
		sources: f.Sources(),
		used:    f.usedInputs(),
		samples: make([]pcolor.ARGB, len(inputs)),
		out:     out,
	}
}

func (w *bandWorker)run(job bandJob) {
	width := w.out.Rect.Dx()
	for y := job.MinY; y < job.MaxY; y++ {
		for x := 0; x < width; x++ {
			p := w.pixelAt(x, y)
			i := w.out.PixOffset(x, y)
			w.out.Pix[i+0] = p.R
			w.out.Pix[i+1] = p.G
			w.out.Pix[i+2] = p.B
			w.out.Pix[i+3] = p.A
		}
	}
}

// pixelAt evaluates all four channels for output location (x,y). Each
// input that is referenced is sampled once, however many channels use it.
func (w *bandWorker)pixelAt(x, y int) pcolor.ARGB {
	for _, idx := range w.used {
		origin := w.inputs[idx].Bounds().Min
		w.samples[idx] = pcolor.FromColor(w.inputs[idx].At(origin.X+x, origin.Y+y))
	}

	p := pcolor.ARGB{}
	for i, ch := range pcolor.Channels {
		v, err := w.sources[i].Eval(w.samples)
		if err != nil {
			// OutputFormat.Validate has already vetted every source
			panic(fmt.Sprintf("plait: internal error at (%d,%d): %v", x, y, err))
		}
		p.Set(ch, v)
	}

	return p
}
