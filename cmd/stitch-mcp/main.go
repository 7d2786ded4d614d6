package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
	"github.com/ironsheep/stitch-pattern-mcp/internal/pattern"
	"github.com/ironsheep/stitch-pattern-mcp/internal/quantize"
	"github.com/ironsheep/stitch-pattern-mcp/internal/render"
	"github.com/ironsheep/stitch-pattern-mcp/internal/server"
	"github.com/ironsheep/stitch-pattern-mcp/internal/stitch"
	"github.com/ironsheep/stitch-pattern-mcp/internal/threads"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("stitch-pattern-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("STITCH_MCP_LOG_LEVEL") == "debug"

	cat, err := loadCatalog(os.Getenv("STITCH_MCP_CATALOG"))
	if err != nil {
		log.Fatalf("Catalog error: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "generate" {
		if err := generate(cat, os.Args[2:], debug); err != nil {
			var se *stitch.StageError
			if errors.As(err, &se) {
				log.Fatalf("Pattern generation failed in %s: %v", se.Stage, se.Err)
			}
			log.Fatalf("Pattern generation failed: %v", err)
		}
		return
	}

	if debug {
		log.Printf("Stitch Pattern MCP Server v%s (built %s, commit %s), %d threads",
			Version, BuildTime, GitCommit, cat.Len())
	}

	server.Version = Version
	srv := server.New(cat)
	srv.Debug = debug
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("stitch-pattern-mcp - cross-stitch pattern generator and MCP server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  stitch-pattern-mcp [options]")
	fmt.Println("  stitch-pattern-mcp generate [flags] <image> <colors> <stitches>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Run 'stitch-pattern-mcp generate -h' for generate flags.")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  STITCH_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println("  STITCH_MCP_CATALOG=<path>     Thread catalog CSV (code,R,G,B,name)")
	fmt.Println()
	fmt.Println("Without a subcommand the server communicates via MCP protocol over")
	fmt.Println("stdin/stdout. Configure it in your MCP client (e.g., Claude Desktop).")
}

// loadCatalog reads the catalog at path, or the embedded DMC table when
// path is empty.
func loadCatalog(path string) (*threads.Catalog, error) {
	if path == "" {
		return threads.Default()
	}
	return threads.LoadFile(path)
}

// generate implements the generate subcommand.
func generate(cat *threads.Catalog, args []string, debug bool) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	outDir := fs.String("o", "output", "output directory")
	cellSize := fs.Int("s", render.DefaultCellSize, "chart cell size in pixels")
	keySize := fs.Int("k", render.DefaultKeySize, "key row height in pixels")
	width := fs.Int("w", imaging.DefaultWorkingWidth, "working width the photograph is resized to")
	quantizer := fs.String("q", "median_cut", "color reduction: median_cut or kmeans")
	prematch := fs.Bool("prematch", false, "snap sampled pixels to threads before reducing")
	order := fs.String("order", pattern.RowMajor.String(), "cleanup order: row-major or column-major")
	region := fs.String("region", "", "crop to x1,y1,x2,y2 before sampling")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: stitch-pattern-mcp generate [flags] <image> <colors> <stitches>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("expected <image> <colors> <stitches>, got %d arguments", fs.NArg())
	}

	colors, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid color count %q: %w", fs.Arg(1), err)
	}
	stitches, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("invalid stitch count %q: %w", fs.Arg(2), err)
	}
	q, err := quantize.ByName(*quantizer)
	if err != nil {
		return err
	}
	ord, err := pattern.ParseOrder(*order)
	if err != nil {
		return err
	}

	var crop *imaging.Region
	if *region != "" {
		var r imaging.Region
		if _, err := fmt.Sscanf(*region, "%d,%d,%d,%d", &r.X1, &r.Y1, &r.X2, &r.Y2); err != nil {
			return fmt.Errorf("invalid region %q: %w", *region, err)
		}
		crop = &r
	}

	img, err := imaging.NewImageCache().Load(fs.Arg(0))
	if err != nil {
		return err
	}

	chart, err := stitch.Generate(cat, img, stitch.Options{
		Colors:       colors,
		Stitches:     stitches,
		WorkingWidth: *width,
		Quantizer:    q,
		Region:       crop,
		PreMatch:     *prematch,
		Order:        ord,
		Debug:        debug,
	})
	if err != nil {
		return err
	}

	res, err := render.Render(chart, render.Options{OutDir: *outDir, CellSize: *cellSize, KeySize: *keySize})
	if err != nil {
		return err
	}

	fmt.Printf("%d x %d stitches, %d colors\n", chart.Grid.Cols, chart.Grid.Rows, len(chart.Palette))
	for _, e := range render.Legend(chart) {
		fmt.Printf("  %3s  %-6s %-28s %s %6d\n", e.Symbol, e.Code, e.Name, e.Hex, e.Stitches)
	}
	for _, f := range res.Files {
		fmt.Println(f)
	}
	return nil
}
