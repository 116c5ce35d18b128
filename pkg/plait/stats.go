package plait

import(
	"image"
	"log"

	"github.com/skypies/util/histogram"

	"github.com/abworrall/plait/pkg/pcolor"
)

// ChannelHistograms builds one histogram per output channel (in A,R,G,B
// order), bucketed by byte value.
func ChannelHistograms(img *image.NRGBA) []histogram.Histogram {
	hists := []histogram.Histogram{}
	for range pcolor.Channels {
		hists = append(hists, histogram.Histogram{NumBuckets:256, ValMin:0, ValMax:256})
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			hists[0].Add(histogram.ScalarVal(int(c.A)))
			hists[1].Add(histogram.ScalarVal(int(c.R)))
			hists[2].Add(histogram.ScalarVal(int(c.G)))
			hists[3].Add(histogram.ScalarVal(int(c.B)))
		}
	}

	return hists
}

func LogChannelStats(img *image.NRGBA) {
	hists := ChannelHistograms(img)
	for i, ch := range pcolor.Channels {
		log.Printf("%-5s histogram: %v\n", ch.Name(), &hists[i])
		if s, ok := hists[i].Stats(); ok {
			log.Printf("%-5s mean %.1f, stddev %.1f, 50%%ile %d, 90%%ile %d\n", ch.Name(), s.Mean, s.Stddev, s.Percentile50, s.Percentile90)
		}
	}
}
