// Command satdemo renders one frame of a surface through the saturation
// effect and writes it as PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/gogpu/compose"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "input", "", "input PNG (default: generated test pattern)")
	flag.StringVar(&cfg.backend, "backend", "", "renderer backend: gles or tty (default: best available)")
	flag.Float64Var(&cfg.saturation, "saturation", 0.2, "saturation factor; 1 keeps colors, 0 is grayscale")
	flag.StringVar(&cfg.output, "output", "saturated.png", "output file")
	flag.IntVar(&cfg.size, "size", 256, "test pattern size in pixels")
	flag.BoolVar(&cfg.validate, "validate", false, "compile shader programs to SPIR-V through naga")
	verbose := flag.Bool("verbose", false, "log renderer diagnostics to stderr")
	flag.Parse()

	if *verbose {
		compose.SetLogger(newLogger(os.Stderr))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("satdemo: %v", err)
	}
	log.Printf("Frame saved to %s\n", cfg.output)
}

// newLogger logs text to terminals and JSON otherwise.
func newLogger(f *os.File) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(f, opts))
	}
	return slog.New(slog.NewJSONHandler(f, opts))
}
