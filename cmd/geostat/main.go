// geostat is a command-line frontend for the geostat library: it
// describes numeric samples and measures great-circle routes.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geostat/geo"
	"github.com/katalvlaran/geostat/stats"
)

var rootCmd = &cobra.Command{
	Use:   "geostat",
	Short: "Descriptive statistics and great-circle geodesy from the shell",
	Long:  `geostat describes numeric samples (mean, spread, quartiles) and measures distances between geographic coordinates.`,
}

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Summarize newline-separated numbers from stdin or a file",
	Args:  cobra.MaximumNArgs(1),
	Run:   runDescribe,
}

var distanceCmd = &cobra.Command{
	Use:   "distance <lon,lat> <lon,lat>",
	Short: "Great-circle distance between two points",
	Args:  cobra.ExactArgs(2),
	Run:   runDistance,
}

var containsCmd = &cobra.Command{
	Use:   "contains <lon,lat>",
	Short: "Test whether a point lies inside a polygon ring or bounding box",
	Args:  cobra.ExactArgs(1),
	Run:   runContains,
}

var (
	unit        string
	useVincenty bool
	ringSpec    string
	boxSpec     string
)

func init() {
	distanceCmd.Flags().StringVarP(&unit, "unit", "u", "km", "Result unit (m, km, mi, nm, yd, ft, ...)")
	distanceCmd.Flags().BoolVar(&useVincenty, "vincenty", false, "Use the spherical Vincenty formula instead of haversine")

	containsCmd.Flags().StringVar(&ringSpec, "ring", "", `Polygon ring as "lon,lat lon,lat lon,lat ..."`)
	containsCmd.Flags().StringVar(&boxSpec, "box", "", `Bounding box as "blLon,blLat trLon,trLat"`)

	rootCmd.AddCommand(describeCmd, distanceCmd, containsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDescribe(cmd *cobra.Command, args []string) {
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("open sample: %v", err)
		}
		defer f.Close()
		in = f
	}

	xs, err := readSample(in)
	if err != nil {
		log.Fatalf("read sample: %v", err)
	}

	s, err := stats.Describe(xs)
	if err != nil {
		log.Fatalf("describe: %v", err)
	}

	fmt.Printf("n        %d\n", s.N)
	fmt.Printf("sum      %.6g\n", s.Sum)
	fmt.Printf("mean     %.6g\n", s.Mean)
	fmt.Printf("stddev   %.6g\n", s.StdDev)
	fmt.Printf("variance %.6g\n", s.Variance)
	fmt.Printf("min      %.6g\n", s.Min)
	fmt.Printf("q1       %.6g\n", s.Q1)
	fmt.Printf("median   %.6g\n", s.Median)
	fmt.Printf("q3       %.6g\n", s.Q3)
	fmt.Printf("max      %.6g\n", s.Max)
	fmt.Printf("iqr      %.6g\n", s.IQR)
}

func runDistance(cmd *cobra.Command, args []string) {
	p1, err := parsePoint(args[0])
	if err != nil {
		log.Fatalf("first point: %v", err)
	}
	p2, err := parsePoint(args[1])
	if err != nil {
		log.Fatalf("second point: %v", err)
	}

	radius, err := geo.EarthRadius(unit)
	if err != nil {
		log.Fatalf("radius: %v", err)
	}

	var d float64
	if useVincenty {
		d = geo.VincentyDistance(p1, p2, radius)
	} else {
		d = geo.HaversineDistance(p1, p2, radius)
	}

	fmt.Printf("%.6g %s\n", d, strings.ToLower(unit))
}

func runContains(cmd *cobra.Command, args []string) {
	p, err := parsePoint(args[0])
	if err != nil {
		log.Fatalf("point: %v", err)
	}

	switch {
	case ringSpec != "":
		ring, err := parseRing(ringSpec)
		if err != nil {
			log.Fatalf("ring: %v", err)
		}
		fmt.Println(geo.PointInPolygonWindingNumber(p, ring))
	case boxSpec != "":
		corners, err := parseRing(boxSpec)
		if err != nil {
			log.Fatalf("box: %v", err)
		}
		if len(corners) != 2 {
			log.Fatalf("box: want 2 corners, got %d", len(corners))
		}
		box := geo.BoundingBox{BottomLeft: corners[0], TopRight: corners[1]}
		fmt.Println(box.Contains(p))
	default:
		log.Fatal("contains: one of --ring or --box is required")
	}
}

// readSample parses one float64 per line, skipping blank lines.
func readSample(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(xs)+1, err)
		}
		xs = append(xs, v)
	}

	return xs, scanner.Err()
}

// parsePoint reads "lon,lat" in degrees.
func parsePoint(s string) (geo.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Point{}, fmt.Errorf("want lon,lat, got %q", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("latitude: %w", err)
	}

	return geo.Point{Lon: lon, Lat: lat}, nil
}

// parseRing reads a whitespace-separated list of lon,lat pairs.
func parseRing(s string) ([]geo.Point, error) {
	fields := strings.Fields(s)
	ring := make([]geo.Point, 0, len(fields))
	for _, f := range fields {
		p, err := parsePoint(f)
		if err != nil {
			return nil, err
		}
		ring = append(ring, p)
	}

	return ring, nil
}
