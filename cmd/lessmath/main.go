package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"golang.org/x/text/language"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/Ortodontalio/less-math/dbg"
	"github.com/Ortodontalio/less-math/geometry"
)

// Demo of the geometry engine. Input on stdin should be newline separated
// labeled points in the form "A x y". Each consecutive pair of points
// becomes a segment with its derived line, and each consecutive triple is
// either reported as collinear or analyzed as a triangle. Optionally the
// whole input is rendered to a PNG.

var (
	plotPath  = kingpin.Flag("plot", "Render the input to a PNG at this path.").String()
	plotScale = kingpin.Flag("scale", "Plot scale in pixels per unit.").Default("20").Float64()
	catPlot   = kingpin.Flag("cat", "Preview the plot inline (iTerm2 and friends).").Bool()
	locale    = kingpin.Flag("locale", "BCP 47 tag used for number formatting.").Default("en").String()
)

func main() {
	kingpin.Parse()
	lang := language.Make(*locale)

	points := readPoints(os.Stdin)
	fmt.Printf("Read %d points\n", len(points))
	if len(points) == 0 {
		return
	}

	plot := &geometry.Plot{}
	for _, p := range points {
		plot.AddPoint(p)
		fmt.Printf("%s is in quarter %s\n", p.Format(lang), aurora.Yellow(p.Quarter()))
	}

	for i := 0; i+1 < len(points); i++ {
		segment, err := geometry.NewSegment(points[i], points[i+1])
		if err != nil {
			fmt.Println(aurora.Red(err))
			continue
		}
		line := geometry.LineFromSegment(segment)
		fmt.Printf("%s has length %.2f and spans line %s: %s\n",
			segment.Format(lang), segment.Length(), dbg.Name(line), line.Format(lang))
		plot.AddSegment(segment)
	}

	for i := 0; i+2 < len(points); i++ {
		a, b, c := points[i], points[i+1], points[i+2]
		if geometry.Collinear(a, b, c) {
			fmt.Printf("%c, %c and %c lie on one line\n", a.Name(), b.Name(), c.Name())
			continue
		}
		triangle, err := geometry.NewTriangle(a, b, c)
		if err != nil {
			fmt.Println(aurora.Red(err))
			continue
		}
		describeTriangle(triangle, lang)
		plot.AddTriangle(triangle)
	}

	if *plotPath != "" {
		if err := plot.SavePNG(*plotPath, *plotScale); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
		if *catPlot {
			geometry.Cat(*plotPath)
		}
	}
}

func describeTriangle(t geometry.Triangle, lang language.Tag) {
	var kinds []string
	if t.Rectangular() {
		kinds = append(kinds, "rectangular")
	}
	if t.Equilateral() {
		kinds = append(kinds, "equilateral")
	} else if t.Isosceles() {
		kinds = append(kinds, "isosceles")
	}
	label := strings.Join(kinds, ", ")
	if label == "" {
		label = "scalene"
	}
	fmt.Printf("%s is %s with angles %.2f, %.2f, %.2f\n",
		t.Format(lang), aurora.Green(label), t.FirstAngle(), t.SecondAngle(), t.ThirdAngle())
}

func readPoints(in *os.File) []geometry.Point {
	points := []geometry.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 3 {
			fmt.Fprintf(os.Stderr, "Skipping malformed line %q\n", line)
			continue
		}
		x, errX := strconv.ParseFloat(parts[1], 64)
		y, errY := strconv.ParseFloat(parts[2], 64)
		if errX != nil || errY != nil {
			fmt.Fprintf(os.Stderr, "Skipping malformed line %q\n", line)
			continue
		}
		points = append(points, geometry.NewPoint([]rune(parts[0])[0], x, y))
	}
	return points
}
