package main

import(
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/abworrall/plait/pkg/plait"
)

var(
	fVerbosity int
	fAlpha string
	fRed string
	fGreen string
	fBlue string
	fOutputFilename string
	fWorkers int
	fKeepAlpha bool
	fJPEGQuality int
	fHDRFilename string
	fPreviewFilename string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")

	flag.StringVar(&fAlpha, "alpha", "", "source of the alpha channel, e.g. a1, r2, 255 (default a1)")
	flag.StringVar(&fRed, "red", "", "source of the red channel (default r1)")
	flag.StringVar(&fGreen, "green", "", "source of the green channel (default g1)")
	flag.StringVar(&fBlue, "blue", "", "source of the blue channel (default b1)")

	flag.StringVar(&fOutputFilename, "o", "", "output filename (default <first input>-plaited.<ext>)")
	flag.BoolVar(&fKeepAlpha, "keepalpha", false, "write the alpha channel into the output file")
	flag.IntVar(&fJPEGQuality, "quality", 0, "JPEG quality, if writing a JPEG (default 95)")
	flag.IntVar(&fWorkers, "workers", 0, "number of goroutines to composite with (default one per CPU)")
	flag.StringVar(&fHDRFilename, "hdr", "", "also write the output as a Radiance .hdr file")
	flag.StringVar(&fPreviewFilename, "preview", "", "also write a PNG showing each output channel")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] image1 [image2 ...] [config.yaml]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Channel sources are a constant in [0,255], or one of a,r,g,b followed\n")
		fmt.Fprintf(flag.CommandLine.Output(), "by an image number (1 is the first image), e.g. -red 255 -green g2\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
}

func main() {
	p := plait.NewPlaiter()
	if err := p.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}

	// Override the config file with command line args, if relevant
	if fAlpha != "" { p.Config.Alpha = fAlpha }
	if fRed != "" { p.Config.Red = fRed }
	if fGreen != "" { p.Config.Green = fGreen }
	if fBlue != "" { p.Config.Blue = fBlue }
	if fOutputFilename != "" { p.Config.OutputFilename = fOutputFilename }
	if fJPEGQuality > 0 { p.Config.JPEGQuality = fJPEGQuality }
	if fWorkers > 0 { p.Config.Workers = fWorkers }
	if fHDRFilename != "" { p.Config.HDRFilename = fHDRFilename }
	if fPreviewFilename != "" { p.Config.PreviewFilename = fPreviewFilename }
	if fVerbosity > 0 { p.Config.Verbosity = fVerbosity }
	if fKeepAlpha { p.Config.KeepAlpha = true }

	if err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
