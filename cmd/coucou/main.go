// CouCouB — fixed-template meme renderer.
//
// Usage:
//
//	coucou -o <file> --style <2|3|4> [--assets <dir>] [-c <caption>]...
//	coucou styles
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Tanpinsary/CouCouB/pkg/assets"
	"github.com/Tanpinsary/CouCouB/pkg/editor"
	"github.com/Tanpinsary/CouCouB/pkg/export"
	"github.com/Tanpinsary/CouCouB/pkg/layout"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "styles":
			printStyles()
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

// captionList collects repeated -c flags in order.
type captionList []string

func (c *captionList) String() string { return strings.Join(*c, ", ") }

func (c *captionList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("coucou", flag.ExitOnError)

	var (
		output   string
		styleNum int
		assetDir string
		fontPath string
		captions captionList
	)

	fs.StringVar(&output, "o", export.DefaultFilename, "Output PNG path")
	fs.StringVar(&output, "output", export.DefaultFilename, "Output PNG path")
	fs.IntVar(&styleNum, "style", 2, "Template style: 2, 3 or 4")
	fs.StringVar(&assetDir, "assets", "assets", "Directory holding the three source images")
	fs.StringVar(&fontPath, "font", "", "Custom TTF for captions (CJK captions need one)")
	fs.Var(&captions, "c", "Caption text, repeatable; empty slots use the style defaults")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	style, ok := layout.StyleFromNumber(styleNum)
	if !ok {
		return fmt.Errorf("unsupported style %d: use 2, 3 or 4", styleNum)
	}
	if len(captions) > style.SlotCount() {
		return fmt.Errorf("%s takes at most %d captions, got %d", style.Name(), style.SlotCount(), len(captions))
	}

	triple, warnings, err := assets.Load(context.Background(), assetDir)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	engine, err := layout.NewEngine(fontPath)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	sess := editor.New(engine, triple)
	sess.SetStyle(style)
	for i, c := range captions {
		sess.SetCaption(i, c)
	}

	if !strings.HasSuffix(strings.ToLower(output), ".png") {
		output += ".png"
	}

	fmt.Printf("Rendering %s → %s\n", style.Name(), output)
	if err := sess.Export(output); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", output)
	return nil
}

func printStyles() {
	fmt.Println("Available styles:")
	for _, s := range []layout.Style{layout.Style2, layout.Style3, layout.Style4} {
		w, h := s.CanvasSize()
		fmt.Printf("\n  %d  %s — %dx%d, %d captions\n", int(s), s.Name(), w, h, s.SlotCount())
		for i := 0; i < s.SlotCount(); i++ {
			fmt.Printf("     slot %d default: %s\n", i, s.DefaultCaption(i))
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`CouCouB — fixed-template meme renderer

USAGE:
    coucou [-o <file>] [--style <2|3|4>] [--assets <dir>] [-c <caption>]...
    coucou styles
    coucou help

OPTIONS:
    -o, --output <path>    Output PNG file (default: ` + export.DefaultFilename + `)
    --style <n>            Template style: 2, 3 or 4 (default: 2)
    --assets <dir>         Directory with right-profile.*, left-profile.*,
                           middle-punchline.* (default: assets)
    -c <text>              Caption for the next slot, repeatable.
                           Omitted or empty slots show the style defaults.
    --font <path>          Custom caption TTF (required for CJK text)

EXAMPLES:
    coucou styles
    coucou --style 2
    coucou --style 3 -c "" -c "" -c "" -c "测试" --font NotoSansSC-Bold.ttf
    coucou -o meme.png --style 4 --assets ./assets
`)
}
