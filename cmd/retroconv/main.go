// Command retroconv converts photos into Game Boy Camera, dot matrix
// printer and retro computer styles.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/setanarut/retroconv"
	"github.com/setanarut/retroconv/palette"
	"github.com/setanarut/retroconv/utils"
)

var verbose bool

// logv prints only when -v was given.
func logv(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func main() {
	app := &cli.App{
		Name:    "retroconv",
		Usage:   "convert photos into retro and vintage hardware styles",
		Version: "1.0.0",
		Commands: []*cli.Command{
			convertCommand(),
			infoCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert INPUT to a retro style and save as OUTPUT",
		ArgsUsage: "INPUT OUTPUT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "style",
				Aliases: []string{"s"},
				Value:   "gameboy",
				Usage:   "output style: " + strings.Join(retroconv.Styles(), ", "),
			},
			&cli.StringFlag{
				Name:    "dither",
				Aliases: []string{"d"},
				Usage:   "dithering algorithm: " + strings.Join(retroconv.Algorithms(), ", "),
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "output width in pixels (style default if omitted)",
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "output height in pixels (derived from aspect ratio if omitted)",
			},
			&cli.Float64Flag{
				Name:    "contrast",
				Aliases: []string{"c"},
				Usage:   "contrast factor (style default if omitted)",
			},
			&cli.StringFlag{
				Name:    "palette",
				Aliases: []string{"p"},
				Usage:   "palette for the retro style: " + strings.Join(palette.Names(), ", ") + ", " + retroconv.AdaptivePalette,
			},
			&cli.StringFlag{
				Name:  "swatch",
				Usage: "also save a palette swatch strip to this path",
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output",
				Destination: &verbose,
			},
		},
		Action: runConvert,
	}
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected INPUT and OUTPUT arguments, got %d", c.NArg())
	}
	input, output := c.Args().Get(0), c.Args().Get(1)

	logv("loading image: %s", input)
	src, err := utils.ReadImage(input)
	if err != nil {
		return err
	}

	style := c.String("style")
	opt := retroconv.Options{
		Width:    c.Int("width"),
		Height:   c.Int("height"),
		Contrast: c.Float64("contrast"),
		Dither:   c.String("dither"),
		Palette:  c.String("palette"),
	}
	logv("converting to %s style (dither=%q palette=%q)", style, opt.Dither, opt.Palette)

	result, err := retroconv.Convert(src, style, opt)
	if err != nil {
		return err
	}

	logv("saving result to: %s", output)
	if err := utils.SaveImage(result, output); err != nil {
		return err
	}
	if swatch := c.String("swatch"); swatch != "" {
		if err := utils.SavePalette(result.Palette, 64, swatch); err != nil {
			return err
		}
		logv("palette swatch saved to: %s", swatch)
	}

	srcBounds := src.Bounds()
	outBounds := result.Bounds()
	logv("conversion complete: %dx%d -> %dx%d, %d colors",
		srcBounds.Dx(), srcBounds.Dy(), outBounds.Dx(), outBounds.Dy(), len(result.Palette))
	return nil
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "list available styles, dither algorithms and palettes",
		Action: func(c *cli.Context) error {
			fmt.Println("Styles:")
			fmt.Println("  gameboy    Game Boy Camera (128x112, 4-shade green)")
			fmt.Println("  dotmatrix  dot matrix printer (black & white)")
			fmt.Println("  retro      retro computer (16-color palette)")
			fmt.Println()
			fmt.Println("Dither algorithms:")
			for _, name := range retroconv.Algorithms() {
				fmt.Println("  " + name)
			}
			fmt.Println()
			fmt.Println("Palettes (retro style):")
			for _, name := range palette.Names() {
				fmt.Println("  " + name)
			}
			fmt.Println("  " + retroconv.AdaptivePalette + " (extracted from the source image)")
			return nil
		},
	}
}
