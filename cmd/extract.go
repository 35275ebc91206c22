package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/docscan-cli/internal/document"
	"github.com/AnyUserName/docscan-cli/internal/imageops"
	"github.com/AnyUserName/docscan-cli/internal/quadassembly"
)

var (
	extractOut    string
	extractCorner []string
	extractWidth  int
	extractHeight int
)

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Rectify a manually specified quad region to a flat image",
	Long: `Applies the perspective rectifier directly to a quad supplied via
--corner, bypassing detection. Corners must be given in a,b,c,d traversal
order (a->b left edge, b->c top, c->d right, d->a bottom), each as "x,y".`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "rectified.png", "output file path")
	extractCmd.Flags().StringArrayVar(&extractCorner, "corner", nil, "a quad corner \"x,y\"; repeat 4 times in a,b,c,d order")
	extractCmd.Flags().IntVar(&extractWidth, "width", 800, "output width")
	extractCmd.Flags().IntVar(&extractHeight, "height", 0, "output height (0 = derive from quad aspect)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(extractCorner) != 4 {
		return fmt.Errorf("expected exactly 4 --corner flags, got %d", len(extractCorner))
	}

	var pts [4]quadassembly.Point
	for i, c := range extractCorner {
		p, err := parsePoint(c)
		if err != nil {
			return fmt.Errorf("--corner %q: %w", c, err)
		}
		pts[i] = p
	}
	quad := quadassembly.Quad{A: pts[0], B: pts[1], C: pts[2], D: pts[3]}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	rgba := imageops.FromImage(img)
	out := document.ExtractDocument(rgba, quad, extractWidth, extractHeight)

	if err := imaging.Save(imageops.ToImage(out), extractOut); err != nil {
		return fmt.Errorf("write %s: %w", extractOut, err)
	}

	logVerbose("wrote %dx%d to %s", out.Width, out.Height, extractOut)
	fmt.Printf("  wrote %s (%dx%d)\n", extractOut, out.Width, out.Height)
	return nil
}

func parsePoint(s string) (quadassembly.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return quadassembly.Point{}, fmt.Errorf(`expected "x,y"`)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return quadassembly.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return quadassembly.Point{}, fmt.Errorf("y: %w", err)
	}
	return quadassembly.Point{X: float32(x), Y: float32(y)}, nil
}
