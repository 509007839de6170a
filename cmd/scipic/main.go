// Command scipic renders an SCI0 picture resource to a PNG file.
//
//	scipic -root ./KQ4 -pic 1 -out pic001.png
//	scipic -file pic.001 -config hires.yaml -plane priority -out prio.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/32bitkid/scipic"
	"github.com/32bitkid/scipic/config"
	"github.com/32bitkid/scipic/decompression"
	sciimage "github.com/32bitkid/scipic/image"
	"github.com/32bitkid/scipic/pic"
	"github.com/32bitkid/scipic/resource"
	"github.com/32bitkid/scipic/screen"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("scipic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		root       = fs.String("root", "", "game directory holding RESOURCE.MAP")
		sci01      = fs.Bool("sci01", false, "use SCI01 compression methods")
		number     = fs.Int("pic", -1, "picture number to render from -root")
		file       = fs.String("file", "", "raw picture program to render instead of -root/-pic")
		configPath = fs.String("config", "", "YAML render settings")
		out        = fs.String("out", "pic.png", "output PNG file")
		plane      = fs.String("plane", "", "plane to write: visual, priority or control")
		verbose    = fs.Bool("v", false, "log diagnostics and debug detail")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	pic.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer pic.SetLogger(nil)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *plane != "" {
		cfg.Output.Plane = *plane
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	opts, err := cfg.PicOptions()
	if err != nil {
		return err
	}

	p, err := render(*root, *sci01, *number, *file, opts)
	if err != nil {
		return err
	}
	for _, d := range p.Diagnostics {
		fmt.Fprintf(stderr, "warning: %v\n", d)
	}

	img, err := compose(p, cfg)
	if err != nil {
		return err
	}
	return writePNG(*out, img)
}

func render(root string, sci01 bool, number int, file string, opts pic.Options) (*pic.Pic, error) {
	switch {
	case file != "":
		program, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		opts.CelDecoder = decompression.RLECel{}
		return pic.New(program, opts)
	case root != "" && number >= 0:
		game := scipic.NewSCI0Root(root)
		if sci01 {
			game = scipic.NewSCI01Root(root)
		}
		if err := game.LoadMapping(); err != nil {
			return nil, err
		}
		return game.Pic(resource.Number(number), opts)
	}
	return nil, fmt.Errorf("either -file or both -root and -pic are required")
}

func compose(p *pic.Pic, cfg *config.Config) (image.Image, error) {
	var view screen.PlaneView
	switch cfg.Output.Plane {
	case config.PlanePriority:
		view = p.Priority()
	case config.PlaneControl:
		view = p.Control()
	default:
		view = p.Visual()
	}

	palette, err := cfg.OutputPalette()
	if err != nil {
		return nil, err
	}
	var img image.Image = sciimage.Paletted(view, palette)

	if cfg.Output.Upscale > 1 {
		filter, err := sciimage.ParseFilter(cfg.Output.Filter)
		if err != nil {
			return nil, err
		}
		if img, err = sciimage.Upscale(img, cfg.Output.Upscale, cfg.Output.Upscale, filter); err != nil {
			return nil, err
		}
	}
	if cfg.Output.CRT {
		img = sciimage.CRT(img)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
