// rlefnt-render is a commandline tool to render text with a packed
// rlefnt font and save the result as an image:
//
//      ./rlefnt-render -font myfont.bin -text "Hello world" -o hello.tga
//
// The output format depends on the file extension (.tga, .bmp or
// .png). Without -o, the result is previewed as text when stdout is
// a terminal, or written as TGA to stdout otherwise.
//
// Use -list to inspect the glyphs of a font instead.
package main

import "errors"
import "flag"
import "fmt"
import "io"
import "log/slog"
import "os"
import "path/filepath"
import "strings"

import "golang.org/x/term"
import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/rlefnt"
import "github.com/tinne26/rlefnt/raster"

var (
	fontName   = flag.String("font", "", "packed font file to render with")
	text       = flag.String("text", "", "text to render")
	outName    = flag.String("o", "", "output file (.tga, .bmp or .png)")
	width      = flag.Int("width", 0, "raster width (0 fits the text)")
	height     = flag.Int("height", 0, "raster height (0 fits the font cell)")
	originX    = flag.Int("x", 0, "reference point X position")
	originY    = flag.Int("y", -1, "baseline Y position (-1 places it at the cell ascent)")
	hints      = flag.Bool("hints", false, "shade glyph boxes and mark reference points")
	cmapName   = flag.String("charmap", "latin1", "charmap for the text: latin1, latin9, cp1252 or cp437")
	listGlyphs = flag.Bool("list", false, "list the font glyphs instead of rendering")
	verbose    = flag.Bool("v", false, "log debug information to stderr")
)

var charmaps = map[string]*charmap.Charmap{
	"latin1": charmap.ISO8859_1,
	"latin9": charmap.ISO8859_15,
	"cp1252": charmap.Windows1252,
	"cp437":  charmap.CodePage437,
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose { level = slog.LevelDebug }
	rlefnt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level })))

	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	if *fontName == "" {
		flag.Usage()
		return errors.New("missing -font")
	}
	font, err := rlefnt.ParseFS(os.DirFS(filepath.Dir(*fontName)), filepath.Base(*fontName))
	if err != nil { return fmt.Errorf("loading %s: %w", *fontName, err) }

	if *listGlyphs { return listFont(os.Stdout, font) }

	cmap, found := charmaps[strings.ToLower(*cmapName)]
	if !found { return fmt.Errorf("unknown charmap %q", *cmapName) }

	target, err := render(font, cmap)
	if err != nil { return err }

	if *outName == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return preview(os.Stdout, target)
		}
		return target.WriteTGA(os.Stdout)
	}
	return save(target, *outName)
}

func render(font *rlefnt.Font, cmap *charmap.Charmap) (*raster.Raster, error) {
	renderer := rlefnt.NewRenderer(font, nil)
	renderer.SetCharmap(cmap)
	advance, err := renderer.MeasureString(*text)
	if err != nil { return nil, err }

	header := font.Header()
	descent := -int(header.Descent())
	y := *originY
	if y < 0 { y = int(header.CellHeight()) - descent }

	w, h := *width, *height
	if w <= 0 {
		w = max(*originX + advance, 1)
		if *hints { w += 1 } // advance marker
	}
	if h <= 0 { h = max(y + descent, int(header.CellHeight()), 1) }
	if w > 0xFFFF || h > 0xFFFF {
		return nil, fmt.Errorf("raster size %dx%d out of range", w, h)
	}

	target, err := raster.New(uint16(w), uint16(h))
	if err != nil { return nil, err }
	renderer = rlefnt.NewRenderer(font, target)
	renderer.SetCharmap(cmap)
	_, err = renderer.DrawString(*originX, y, *text, *hints)
	if err != nil { return nil, err }
	return target, nil
}

func save(target *raster.Raster, filename string) error {
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tga":
		err = target.SaveTGA(filename)
	case ".bmp":
		err = target.SaveBMP(filename)
	case ".png":
		err = target.SavePNG(filename)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(filename))
	}
	if err != nil { return err }
	rlefnt.Logger().Info("raster written", "file", filename, "width", target.Width(), "height", target.Height())
	return nil
}

// Black pixels become '#', shading '.' and hint markers '+'.
func preview(writer io.Writer, target *raster.Raster) error {
	var line strings.Builder
	for y := 0; y < target.Height(); y++ {
		line.Reset()
		for x := 0; x < target.Width(); x++ {
			r, g, b, _ := target.Pixel(x, y)
			switch {
			case r == 255 && g == 255 && b == 255:
				line.WriteByte(' ')
			case r == 0 && g == 0 && b == 0:
				line.WriteByte('#')
			case r == g && g == b:
				line.WriteByte('.')
			default:
				line.WriteByte('+')
			}
		}
		line.WriteByte('\n')
		_, err := io.WriteString(writer, line.String())
		if err != nil { return err }
	}
	return nil
}

func listFont(writer io.Writer, font *rlefnt.Font) error {
	header := font.Header()
	fmt.Fprintf(writer, "glyphs: %d, cell: %dx%d, descent: %d\n",
		header.NumGlyphs(), header.CellWidth(), header.CellHeight(), header.Descent())

	var err error
	font.Glyphs().Each(func(code byte, record []byte) bool {
		var info rlefnt.GlyphInfo
		info, err = font.Glyphs().RecordInfo(record)
		if err != nil { return false }
		fmt.Fprintf(writer, "0x%02X %q  %dx%d  offset (%d, %d)  advance %d  record %d bytes\n",
			code, charmap.ISO8859_1.DecodeByte(code), info.Width, info.Height,
			info.XOffset, info.YOffset, info.Advance, len(record))
		return true
	})
	return err
}
