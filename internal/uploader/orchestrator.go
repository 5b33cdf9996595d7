// Package uploader drives concurrent uploads from a client and tracks a
// simulated progress value per file.
package uploader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/model"
)

const (
	// Failed marks an upload that will not complete.
	Failed float64 = -1
	// Done marks a completed upload until it is removed.
	Done float64 = 100

	DefaultTick   = 200 * time.Millisecond
	DefaultLinger = 2000 * time.Millisecond
	DefaultCap    = 90
	DefaultStep   = 20
)

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Result struct {
	// Name is the progress key, disambiguated when several files share a name.
	Name  string
	Asset *model.MediaAsset
	Err   error
}

type Options struct {
	Tick     time.Duration
	Linger   time.Duration
	Cap      float64
	Source   ProgressSource
	OnChange func(map[string]float64)
	// After schedules the removal of completed entries; time.After when nil.
	After func(time.Duration) <-chan time.Time
}

type Orchestrator struct {
	transport Transport
	opts      Options

	mu       sync.Mutex
	progress map[string]float64

	notifyMu sync.Mutex
	pending  sync.WaitGroup
}

func NewOrchestrator(t Transport, opts Options) *Orchestrator {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Linger <= 0 {
		opts.Linger = DefaultLinger
	}
	if opts.Cap <= 0 {
		opts.Cap = DefaultCap
	}
	if opts.Source == nil {
		opts.Source = NewRandomSource(DefaultStep)
	}
	if opts.After == nil {
		opts.After = time.After
	}
	return &Orchestrator{transport: t, opts: opts, progress: map[string]float64{}}
}

// Run uploads every file concurrently and returns one result per file, in
// input order. A failed file never cancels the others.
func (o *Orchestrator) Run(ctx context.Context, files []File) []Result {
	results := make([]Result, len(files))
	keys := o.register(files)

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f File) {
			defer wg.Done()
			asset, err := o.uploadOne(ctx, keys[i], f)
			results[i] = Result{Name: keys[i], Asset: asset, Err: err}
		}(i, f)
	}
	wg.Wait()
	return results
}

// Snapshot returns a copy of the progress map.
func (o *Orchestrator) Snapshot() map[string]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[string]float64, len(o.progress))
	for k, v := range o.progress {
		out[k] = v
	}
	return out
}

// Settle blocks until every completed entry has been removed.
func (o *Orchestrator) Settle() {
	o.pending.Wait()
}

func (o *Orchestrator) register(files []File) []string {
	o.mu.Lock()
	keys := make([]string, len(files))
	for i, f := range files {
		key := f.Name
		for n := 2; ; n++ {
			if _, taken := o.progress[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s (%d)", f.Name, n)
		}
		o.progress[key] = 0
		keys[i] = key
	}
	o.mu.Unlock()
	o.notify()
	return keys
}

func (o *Orchestrator) uploadOne(ctx context.Context, key string, f File) (*model.MediaAsset, error) {
	stop := make(chan struct{})
	ticked := make(chan struct{})
	go o.tick(key, stop, ticked)

	asset, err := o.transport.Upload(ctx, f)
	close(stop)
	<-ticked

	if err != nil {
		o.set(key, Failed)
		return nil, err
	}

	o.set(key, Done)
	o.pending.Add(1)
	go func() {
		defer o.pending.Done()
		<-o.opts.After(o.opts.Linger)
		o.remove(key)
	}()
	return asset, nil
}

func (o *Orchestrator) tick(key string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(o.opts.Tick)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			o.mu.Lock()
			v := o.progress[key] + o.opts.Source.Next()
			if v > o.opts.Cap {
				v = o.opts.Cap
			}
			o.progress[key] = v
			o.mu.Unlock()
			o.notify()
		}
	}
}

func (o *Orchestrator) set(key string, v float64) {
	o.mu.Lock()
	o.progress[key] = v
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) remove(key string) {
	o.mu.Lock()
	delete(o.progress, key)
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) notify() {
	if o.opts.OnChange == nil {
		return
	}
	o.notifyMu.Lock()
	defer o.notifyMu.Unlock()
	o.opts.OnChange(o.Snapshot())
}
