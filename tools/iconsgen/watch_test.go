// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package iconsgen

import (
	"context"
	"fmt"
	"testing"
	"time"
)

var _ = fmt.Print

func TestWatch(t *testing.T) {
	cfg := test_config(t)
	write_assets(t, cfg.Source, map[string]string{"one.svg": `<svg/>`})
	orig := WatchDebounce
	WatchDebounce = 20 * time.Millisecond
	defer func() { WatchDebounce = orig }()

	ctx, cancel := context.WithCancel(context.Background())
	runs := make(chan int, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, cfg, Write, func(r *Result, err error) {
			if err != nil {
				runs <- -1
			} else {
				runs <- len(r.Assets)
			}
		})
	}()
	next := func() int {
		select {
		case n := <-runs:
			return n
		case <-time.After(5 * time.Second):
			t.Fatalf("Timed out waiting for a generator run")
		}
		return 0
	}
	if n := next(); n != 1 {
		t.Fatalf("Initial run found %d assets", n)
	}
	write_assets(t, cfg.Source, map[string]string{"nested/two.svg": `<svg><g/></svg>`})
	for n := next(); n != 2; n = next() {
		// the new directory can be reported before its file is written
	}
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Watch did not stop when its context was cancelled")
	}
}
