package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/smasonuk/sieview"
	"github.com/smasonuk/sieview/preview"
	"github.com/smasonuk/sieview/snapshot"
)

var (
	app        = kingpin.New("sieview", "Preview PLY, DXF and SVG geometry.")
	configFile = app.Flag("config", "Viewer configuration (YAML).").Short('c').ExistingFile()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()

	snapshotCmd    = app.Command("snapshot", "Render a file to a PNG image.")
	snapshotInput  = snapshotCmd.Arg("file", "Geometry file.").Required().ExistingFile()
	snapshotOutput = snapshotCmd.Flag("output", "PNG file to write.").Short('o').Default("out.png").String()
	snapshotTop    = snapshotCmd.Flag("top", "Use the top viewport.").Bool()

	viewCmd   = app.Command("view", "Open a file in a window.")
	viewInput = viewCmd.Arg("file", "Geometry file.").Required().ExistingFile()

	statsCmd   = app.Command("stats", "Print geometry statistics.")
	statsInput = statsCmd.Arg("file", "Geometry file.").Required().ExistingFile()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	cfg := sieview.DefaultViewerConfig()
	if *configFile != "" {
		var err error
		cfg, err = sieview.LoadViewerConfigFile(*configFile)
		app.FatalIfError(err, "config")
	}

	switch cmd {
	case snapshotCmd.FullCommand():
		if *snapshotTop {
			cfg.Viewport = sieview.Top
		}
		scene, cam, err := load(cfg, *snapshotInput)
		app.FatalIfError(err, "load")
		snap, err := snapshot.Render(scene, cam, snapshot.OptionsFromConfig(cfg))
		app.FatalIfError(err, "render")
		app.FatalIfError(snap.SavePNG(*snapshotOutput), "save")
		fmt.Println(au.Green("wrote"), *snapshotOutput)

	case viewCmd.FullCommand():
		scene, cam, err := load(cfg, *viewInput)
		app.FatalIfError(err, "load")
		if err := preview.Run(scene, cam, cfg); err != nil {
			log.Fatal(err)
		}

	case statsCmd.FullCommand():
		app.FatalIfError(printStats(au, cfg, *statsInput), "stats")
	}
}

func load(cfg sieview.ViewerConfig, path string) (*sieview.Scene, *sieview.Camera, error) {
	scene := cfg.NewScene()
	if _, err := scene.AddFile(path, cfg.DefaultMeshColor()); err != nil {
		return nil, nil, err
	}
	cam, err := cfg.NewCamera()
	if err != nil {
		return nil, nil, err
	}
	if err := cam.ZoomExtents(scene.Extents(), cfg.Width, cfg.Height); err != nil {
		return nil, nil, err
	}
	return scene, cam, nil
}

func printStats(au aurora.Aurora, cfg sieview.ViewerConfig, path string) error {
	scene := sieview.NewScene()
	scene.ShowGrid = false
	scene.ShowAxes = false
	if _, err := scene.AddFile(path, cfg.DefaultMeshColor()); err != nil {
		return err
	}
	renderables, err := scene.Draw()
	if err != nil {
		return err
	}

	fmt.Println(au.Bold(path))
	for _, r := range renderables {
		fmt.Printf("  %-24s %8d %s\n", au.Cyan(r.Name), au.Yellow(r.Buffer.PrimitiveCount()), r.Buffer.Primitive)
	}
	b := scene.Extents()
	fmt.Printf("  %-24s %v\n", au.Cyan("min"), b.Min)
	fmt.Printf("  %-24s %v\n", au.Cyan("max"), b.Max)
	fmt.Printf("  %-24s %v\n", au.Cyan("size"), b.Size())
	return nil
}
