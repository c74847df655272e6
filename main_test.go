package main

import (
	"testing"

	"github.com/sheikhrachel/gof/render"
	"github.com/sheikhrachel/gof/utils"
)

func TestRunRejectsBadProbability(t *testing.T) {
	if code := run([]string{"-p", "3"}); code != exitUsage {
		t.Fatalf("exit code %d, want %d", code, exitUsage)
	}
}

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(17); got != 17 {
		t.Fatalf("explicit seed replaced: %d", got)
	}
	if resolveSeed(0) == 0 {
		t.Fatal("zero seed not replaced")
	}
}

func TestNewRendererFallbackModes(t *testing.T) {
	config := utils.DefaultConfig()

	config.Mode = utils.ModeScroll
	r, err := newRenderer(config)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*render.Scroll); !ok {
		t.Fatalf("scroll mode built %T", r)
	}

	config.Mode = utils.ModeInline
	r, err = newRenderer(config)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*render.Inline); !ok {
		t.Fatalf("inline mode built %T", r)
	}
	if _, ok := r.(render.IntroGate); ok {
		t.Fatal("inline renderer should not offer an intro")
	}
}
