package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/petridecus/viso/easing"
)

// Sandbox for eyeballing easing curves in the terminal before wiring
// them into behavior presets

var curves = map[string]easing.Easing{
	"linear":        {Kind: easing.Linear},
	"quadratic-in":  {Kind: easing.QuadraticIn},
	"quadratic-out": {Kind: easing.QuadraticOut},
	"sqrt-out":      {Kind: easing.SqrtOut},
	"hermite":       easing.Default,
}

func main() {
	var (
		name   string
		width  int
		height int
		c1, c2 float64
	)

	flag.StringVar(&name, "e", "hermite", "Easing: linear, quadratic-in, quadratic-out, sqrt-out, hermite")
	flag.IntVar(&width, "w", 60, "Plot width in columns")
	flag.IntVar(&height, "h", 20, "Plot height in rows")
	flag.Float64Var(&c1, "c1", easing.Default.C1, "Hermite first control value")
	flag.Float64Var(&c2, "c2", easing.Default.C2, "Hermite second control value")
	flag.Parse()

	curve, ok := curves[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown easing %q\n", name)
		os.Exit(1)
	}
	if name == "hermite" {
		curve = easing.Hermite(c1, c2)
	}

	plot(curve, name, width, height)
}

func plot(curve easing.Easing, name string, width, height int) {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}

	for x := 0; x < width; x++ {
		t := float64(x) / float64(width-1)
		v := curve.Evaluate(t)
		y := height - 1 - int(v*float64(height-1))
		if y >= 0 && y < height {
			grid[y][x] = '*'
		}
	}

	fmt.Printf("%s\n\n", name)
	for _, row := range grid {
		fmt.Printf("|%s\n", string(row))
	}
	fmt.Printf("+%s\n", strings.Repeat("-", width))

	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("  f(%.2f) = %.4f\n", t, curve.Evaluate(t))
	}
}
