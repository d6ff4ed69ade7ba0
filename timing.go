//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package hashes

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/hashes/env"
	"github.com/markkurossi/tabulate"
	"golang.org/x/crypto/chacha20"
)

// FileSize specifies a data size in bytes.
type FileSize uint64

func (s FileSize) String() string {
	if s >= 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s >= 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s >= 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s >= 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Throughput returns the data rate of size bytes in duration d.
func Throughput(size int64, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return FileSize(float64(size)/d.Seconds()).String() + "/s"
}

func percent(part, whole time.Duration) string {
	if whole <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(whole)*100)
}

// Timing records timing samples and renders a throughput report.
type Timing struct {
	Start   time.Time
	Size    int64
	Samples []*Sample
}

// NewTiming creates a new Timing instance for inputs of size bytes.
func NewTiming(size int64) *Timing {
	return &Timing{
		Start: time.Now(),
		Size:  size,
	}
}

// Sample adds a timing sample with label and data columns.
func (t *Timing) Sample(label string, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the throughput report to w.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Throughput").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(percent(duration, total))

		for _, col := range sample.Cols {
			row.Column(col)
		}

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "╰╴"
			} else {
				prefix = "├╴"
			}

			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			d := sub.End.Sub(sub.Start)
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)

			row.Column(percent(d, duration)).SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(t.Size*int64(len(t.Samples))).String()).
		SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Cols    []string
	Samples []*Sample
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, end time.Time) {
	start := s.Start
	if len(s.Samples) > 0 {
		start = s.Samples[len(s.Samples)-1].End
	}
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: start,
		End:   end,
	})
}

// Keystream returns size bytes of benchmark input. The input is a
// ChaCha20 keystream keyed from config.GetRandom().
func Keystream(config *env.Config, size int) ([]byte, error) {
	var key [chacha20.KeySize]byte
	if _, err := io.ReadFull(config.GetRandom(), key[:]); err != nil {
		return nil, err
	}
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	cipher.XORKeyStream(buf, buf)
	return buf, nil
}

// Benchmark hashes size bytes of input with each algorithm and
// returns the timing samples. Each sample has write and finish
// sub-samples.
func Benchmark(config *env.Config, algs []*Algorithm, size int) (
	*Timing, error) {

	data, err := Keystream(config, size)
	if err != nil {
		return nil, err
	}

	timing := NewTiming(int64(size))
	for _, alg := range algs {
		h := alg.New()
		h.Write(data)
		written := time.Now()
		sum := h.Finish()

		sample := timing.Sample(alg.Name, nil)
		sample.Cols = []string{
			Throughput(int64(size), sample.End.Sub(sample.Start)),
		}
		sample.SubSample("Write", written)
		sample.SubSample("Finish", sample.End)

		log.Debugf("%s: %x", alg.Name, sum)
	}
	return timing, nil
}
