package main

import (
	"io"
	"sort"

	"github.com/schollz/progressbar/v3"

	"github.com/fhuszti/wedding-medias-go/internal/uploader"
)

// progressBoard keeps one bar per file. The orchestrator serialises
// OnChange calls, so no locking is needed here.
type progressBoard struct {
	out  io.Writer
	bars map[string]*progressbar.ProgressBar
}

func newProgressBoard(out io.Writer) *progressBoard {
	return &progressBoard{out: out, bars: make(map[string]*progressbar.ProgressBar)}
}

func (b *progressBoard) update(progress map[string]float64) {
	names := make([]string, 0, len(progress))
	for n := range progress {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		bar := b.bar(n)
		if v := progress[n]; v == uploader.Failed {
			bar.Describe(n + " failed")
			_ = bar.Exit()
		} else {
			_ = bar.Set(int(v))
		}
	}

	// entries the orchestrator dropped have lingered long enough
	for n, bar := range b.bars {
		if _, ok := progress[n]; !ok {
			_ = bar.Finish()
			delete(b.bars, n)
		}
	}
}

func (b *progressBoard) bar(name string) *progressbar.ProgressBar {
	if bar, ok := b.bars[name]; ok {
		return bar
	}
	bar := progressbar.NewOptions(int(uploader.Done),
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionSetDescription(name),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(b.out, "\n") }),
	)
	b.bars[name] = bar
	return bar
}
