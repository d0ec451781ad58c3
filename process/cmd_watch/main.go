package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"payproof/pkg/extract"
	"payproof/pkg/ocr"
	"payproof/pkg/verify"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
)

// cmd_watch watches a directory for dropped screenshots and prints one JSON
// verdict line per image. Useful for batch checking a folder without the API.

var imageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".bmp":  {},
}

func main() {
	dir := flag.String("dir", "", "directory to watch for screenshots")
	payee := flag.String("payee", os.Getenv("TARGET_PAYEE"), "expected paid-to name")
	scanExisting := flag.Bool("scan", false, "verify files already present before watching")
	flag.Parse()
	if *dir == "" {
		log.Fatalf("-dir required")
	}

	cfg := verify.Config{TargetPayee: *payee}

	if *scanExisting {
		entries, err := os.ReadDir(*dir)
		if err != nil {
			log.Fatalf("read dir: %v", err)
		}
		for _, e := range entries {
			if !e.IsDir() && isImage(e.Name()) {
				checkFile(filepath.Join(*dir, e.Name()), cfg)
			}
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watcher: %v", err)
	}
	defer w.Close()
	if err := w.Add(*dir); err != nil {
		log.Fatalf("watch %s: %v", *dir, err)
	}
	log.Printf("watching %s", *dir)

	// Coalesce write bursts per path so we only read a file once it settles.
	deb := newDebouncer(500*time.Millisecond, func(path string) {
		checkFile(path, cfg)
	})
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !isImage(ev.Name) {
				continue
			}
			deb.touch(ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// debouncer fires fn once per path after writes to it have been quiet for the
// configured delay. Entries are removed when their timer fires, so the map
// stays bounded by the number of in-flight paths.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*time.Timer
	fn      func(path string)
}

func newDebouncer(delay time.Duration, fn func(path string)) *debouncer {
	return &debouncer{delay: delay, pending: map[string]*time.Timer{}, fn: fn}
}

func (d *debouncer) touch(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, exists := d.pending[path]; exists {
		t.Stop()
	}
	d.pending[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.pending, path)
		d.mu.Unlock()
		d.fn(path)
	})
}

func (d *debouncer) size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func isImage(name string) bool {
	_, ok := imageExts[strings.ToLower(filepath.Ext(name))]
	return ok
}

type watchResult struct {
	File string `json:"file"`
	extract.Record
	Verified           bool     `json:"verified"`
	VerifiedPercentage float64  `json:"verified_percentage"`
	ReasonsForFalse    []string `json:"reasons_for_false,omitempty"`
	PhotoshopDetected  bool     `json:"photoshop_detected"`
	IsBlurry           bool     `json:"is_blurry"`
}

func checkFile(path string, cfg verify.Config) {
	img, err := imaging.Open(path)
	if err != nil {
		log.Printf("skip %s: %v", path, err)
		return
	}
	text, err := ocr.RecognizeText(path)
	if err != nil && err != ocr.ErrNoText {
		log.Printf("ocr %s: %v", path, err)
		return
	}
	tampered, _ := ocr.DetectEditingTool(path)

	rec := extract.Extract(text)
	rec.TamperDetected = tampered
	verdict := verify.Score(rec, cfg, time.Now().UTC())

	out := watchResult{
		File:               filepath.Base(path),
		Record:             rec,
		Verified:           verdict.Verified,
		VerifiedPercentage: verdict.Score,
		ReasonsForFalse:    verdict.Reasons,
		PhotoshopDetected:  tampered,
		IsBlurry:           ocr.IsBlurry(img),
	}
	b, err := json.Marshal(out)
	if err != nil {
		log.Printf("marshal %s: %v", path, err)
		return
	}
	fmt.Println(string(b))
}
