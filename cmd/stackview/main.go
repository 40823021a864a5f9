package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/astroview/stackview/internal/config"
	"github.com/astroview/stackview/internal/imaging"
	"github.com/astroview/stackview/internal/outputs"
	"github.com/astroview/stackview/internal/render"
	"github.com/astroview/stackview/internal/settings"
)

func main() {
	var (
		listFormats = flag.Bool("list", false, "list the output formats the imaging backend supports")
		input       = flag.String("in", "", "input frame to convert")
		formatName  = flag.String("format", "png", "output format (bmp, png, tiff, jpeg, webp)")
		outDir      = flag.String("out", "", "output directory (defaults to STACKVIEW_OUTPUT_DIR, then the last used directory)")
		previewPath = flag.String("preview", "", "also write the display surface as a PNG preview")
	)
	flag.Parse()

	cfg := config.Load()
	logger := log.New(os.Stdout, "[stackview] ", log.LstdFlags|log.Lmsgprefix)

	if err := imaging.Startup(); err != nil {
		logger.Fatalf("imaging backend startup failed: %v", err)
	}
	defer imaging.Shutdown()

	lib := imaging.NewLibrary()
	registry, err := outputs.NewRegistry(lib)
	if err != nil {
		logger.Fatalf("build output format registry: %v", err)
	}

	if *listFormats {
		for _, d := range registry.Descriptors() {
			fmt.Printf("%-6s %-28s patterns=%s default=%s\n",
				d.Format, d.Name, strings.Join(d.Patterns, ","), d.DefaultExtension)
		}
		return
	}

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	out, err := imaging.ParseOutputFormat(*formatName)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	descr, ok := findDescriptor(registry, out)
	if !ok {
		logger.Fatalf("output format %s is not supported by this backend", out)
	}

	img, err := lib.LoadImage(*input)
	if err != nil {
		logger.Fatalf("load %s: %v", *input, err)
	}
	logger.Printf("loaded %s %dx%d pixel_format=%s", *input, img.Width(), img.Height(), img.Format())

	numChannels := 3
	if img.Format().ChannelCount() == 1 {
		numChannels = 1
	}
	target := imaging.FindMatchingFormat(out, numChannels)
	if target == imaging.PixInvalid {
		logger.Fatalf("%s cannot represent a %d-channel image", descr.Name, numChannels)
	}

	converted, err := lib.ConvertPixelFormat(img, target)
	if err != nil {
		logger.Fatalf("convert to %s: %v", target, err)
	}

	settingsPath := cfg.SettingsPath
	if settingsPath == "" {
		if settingsPath, err = settings.DefaultPath(); err != nil {
			logger.Printf("settings unavailable: %v", err)
		}
	}
	prefs := settings.Default()
	if settingsPath != "" {
		if prefs, err = settings.Load(settingsPath); err != nil {
			logger.Printf("load settings: %v", err)
			prefs = settings.Default()
		}
	}

	dir := *outDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	if dir == "" {
		dir = prefs.LastOutputDir
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Fatalf("create output dir %s: %v", dir, err)
	}

	base := strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
	outPath := filepath.Join(dir, base+descr.DefaultExtension)
	if err := lib.SaveImage(converted, outPath, out); err != nil {
		logger.Fatalf("save %s: %v", outPath, err)
	}
	logger.Printf("wrote %s format=%q pixel_format=%s", outPath, descr.Name, target)

	if settingsPath != "" {
		prefs.LastOutputDir = dir
		if err := settings.Save(settingsPath, prefs); err != nil {
			logger.Printf("save settings: %v", err)
		}
	}

	if *previewPath != "" {
		if err := writePreview(lib, img, *previewPath); err != nil {
			logger.Fatalf("write preview: %v", err)
		}
		logger.Printf("wrote preview %s", *previewPath)
	}
}

func findDescriptor(registry *outputs.Registry, f imaging.OutputFormat) (outputs.Descriptor, bool) {
	for _, d := range registry.Descriptors() {
		if d.Format == f {
			return d, true
		}
	}
	return outputs.Descriptor{}, false
}

func writePreview(lib imaging.Library, img *imaging.Image, path string) error {
	converter := render.NewConverter(lib, render.NewMetrics())
	surface, err := converter.ConvertImageToSurface(img)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview file %s: %w", path, err)
	}
	if err := png.Encode(f, surface.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode preview: %w", err)
	}
	return f.Close()
}
