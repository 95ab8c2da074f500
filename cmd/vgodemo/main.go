// Command vgodemo builds vgo frames headlessly and reports batching
// statistics. With -gpu it also renders the last frame and writes it to
// a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/isaiah-parton/vgo"
	"github.com/isaiah-parton/vgo/renderer"
	"github.com/isaiah-parton/vgo/text"
)

func main() {
	var (
		width   = flag.Int("width", 800, "frame width")
		height  = flag.Int("height", 600, "frame height")
		frames  = flag.Int("frames", 60, "number of frames to build")
		useGPU  = flag.Bool("gpu", false, "render the last frame on the GPU")
		output  = flag.String("output", "demo.png", "output file for -gpu")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		vgo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	font, err := text.NewFont(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}
	drawer := text.NewDrawer(0)

	ctx := vgo.NewContext()
	var frame *vgo.Frame
	for i := 0; i < *frames; i++ {
		t := float32(i) / float32(*frames)
		buildScene(ctx, drawer, font, float32(*width), float32(*height), t)
		frame = ctx.EndFrame()
	}

	log.Printf("Built %d frames at %dx%d", *frames, *width, *height)
	log.Printf("Last frame: %d shapes, %d paints, %d matrices, %d vertices, %d indices, %d draw calls",
		len(frame.Shapes)-1, len(frame.Paints)-1, len(frame.Matrices)-1,
		len(frame.Vertices), len(frame.Indices), len(frame.DrawCalls))

	if !*useGPU {
		return
	}

	r, err := renderer.NewRenderer(uint32(*width), uint32(*height))
	if err != nil {
		log.Fatalf("Failed to open GPU device: %v", err)
	}
	defer r.Close()

	atlas := drawer.Atlas()
	atlasTex, err := r.CreateTexture("demo_atlas", uint32(atlas.Size()), uint32(atlas.Size()))
	if err != nil {
		log.Fatalf("Failed to create atlas texture: %v", err)
	}
	defer atlasTex.Destroy()
	if err := atlasTex.Upload(atlas.Flush()); err != nil {
		log.Fatalf("Failed to upload atlas: %v", err)
	}
	r.SetAtlas(atlasTex)

	// Rebuild the final scene and submit it.
	buildScene(ctx, drawer, font, float32(*width), float32(*height), 1)
	if err := ctx.Present(r); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := savePNG(*output, r.Pixels(), *width, *height); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendered frame saved to %s", *output)
}

// buildScene records one frame exercising boxes, circles, arcs, paths,
// polygons, boolean chains, transforms, scissors, and text.
func buildScene(ctx *vgo.Context, drawer *text.Drawer, font *text.Font, w, h, t float32) {
	ctx.NewFrame()

	// Gradient background.
	ctx.FillBox(vgo.Pt(0, 0), vgo.Pt(w, h), [4]float32{}, vgo.PaintValue(
		vgo.LinearGradientPaint(vgo.Pt(0, 0), vgo.Pt(0, h),
			vgo.RGBA(28, 33, 48, 255), vgo.RGBA(58, 48, 76, 255))))

	// Overlapping translucent circles.
	ctx.FillCircle(vgo.Pt(150, 150), 60, vgo.PaintColor(vgo.RGBA(255, 76, 76, 200)))
	ctx.FillCircle(vgo.Pt(200, 150), 60, vgo.PaintColor(vgo.RGBA(76, 255, 76, 200)))
	ctx.FillCircle(vgo.Pt(175, 200), 60, vgo.PaintColor(vgo.RGBA(76, 76, 255, 200)))

	// Rounded box with a soft shadow behind it.
	ctx.BoxShadow(vgo.Pt(356, 106), vgo.Pt(476, 186), 12, [4]float32{15, 15, 15, 15},
		vgo.PaintColor(vgo.RGBA(0, 0, 0, 128)))
	ctx.FillBox(vgo.Pt(350, 100), vgo.Pt(470, 180), [4]float32{15, 15, 15, 15},
		vgo.PaintColor(vgo.RGBA(255, 204, 0, 255)))
	ctx.StrokeBox(vgo.Pt(350, 100), vgo.Pt(470, 180), 4, [4]float32{15, 15, 15, 15},
		vgo.PaintColor(vgo.RGBA(255, 255, 255, 255)))

	// Ring of rotated squares.
	for i := 0; i < 8; i++ {
		angle := (float32(i)/8 + t) * 2 * math.Pi
		ctx.PushMatrix()
		ctx.Translate(620, 150)
		ctx.RotateZ(angle)
		ctx.FillBox(vgo.Pt(-30, -30), vgo.Pt(30, 30), [4]float32{4, 4, 4, 4},
			vgo.PaintColor(vgo.RGBA(uint8(100+i*18), 120, 255, 180)))
		ctx.PopMatrix()
	}

	// Scissored grid: only the window region survives.
	ctx.PushScissor(vgo.Box{Lo: vgo.Pt(80, 300), Hi: vgo.Pt(320, 460)})
	for row := 0; row < 12; row++ {
		for col := 0; col < 16; col++ {
			lo := vgo.Pt(40+float32(col)*24, 280+float32(row)*20)
			ctx.FillBox(lo, lo.Add(vgo.Pt(18, 14)), [4]float32{3, 3, 3, 3},
				vgo.PaintColor(vgo.RGBA(90, uint8(100+row*10), uint8(120+col*8), 255)))
		}
	}
	ctx.PopScissor()

	// Curvy stroked path.
	ctx.BeginPath()
	ctx.MoveTo(vgo.Pt(150, 520))
	ctx.QuadraticBezierTo(vgo.Pt(200, 470), vgo.Pt(250, 520))
	ctx.QuadraticBezierTo(vgo.Pt(300, 570), vgo.Pt(350, 520))
	ctx.QuadraticBezierTo(vgo.Pt(400, 470), vgo.Pt(450, 520))
	ctx.FillPath(vgo.PaintColor(vgo.RGBA(255, 128, 0, 255)))

	// Star polygon.
	star := make([]vgo.Point, 0, 10)
	for i := 0; i < 10; i++ {
		r := float32(60)
		if i%2 == 1 {
			r = 30
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		star = append(star, vgo.Pt(
			560+r*float32(math.Cos(a)),
			520+r*float32(math.Sin(a))))
	}
	ctx.FillPolygon(vgo.PaintColor(vgo.RGBA(255, 255, 0, 255)), star...)

	// Boolean chain: circle with a box subtracted from it.
	base := ctx.AddShape(vgo.MakeCircle(vgo.Pt(700, 420), 50))
	hole := ctx.AddShape(vgo.MakeBox(vgo.Pt(680, 400), vgo.Pt(760, 440), [4]float32{}))
	ctx.LinkShapes(base, hole, vgo.CombineSubtraction)
	ctx.DrawShape(base, vgo.PaintValue(
		vgo.RadialGradientPaint(vgo.Pt(700, 420), 50,
			vgo.RGBA(0, 230, 190, 255), vgo.RGBA(0, 90, 160, 255))))

	// Text on the baseline near the bottom.
	if _, err := drawer.DrawText(ctx, font, 22, vgo.Pt(40, h-30),
		"vgo scene construction demo", vgo.RGBA(235, 235, 245, 255)); err != nil {
		log.Printf("DrawText: %v", err)
	}
}

func savePNG(path string, pixels []byte, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
