package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gcfg.v1"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"

	"github.com/sampleset/interp"
)

const exampleEvalFile = `[Eval]

#######################
# Required Parameters #
#######################

# File containing the sample table: one sample per line, columns
# separated by whitespace. Lines starting with # are skipped.
PointFile = path/to/points.txt

#######################
# Optional Parameters #
#######################

# Interpolation method. One of [ linear | quadratic | cubic ].
# Default is linear.
# Method = linear

# Zero-indexed columns of the sample file holding the x and y values.
# Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# If set, a figure showing the samples and the interpolated curve is
# written to this file.
# Plot = curve.png

# Number of curve evaluations used for the plot. Default is 200.
# CurveSamples = 200`

type EvalConfig struct {
	PointFile string
	Method    string

	XColumn, YColumn int

	Plot         string
	CurveSamples int
}

type EvalWrapper struct {
	Eval EvalConfig
}

func DefaultEvalWrapper() *EvalWrapper {
	return &EvalWrapper{
		Eval: EvalConfig{
			Method:       "linear",
			XColumn:      0,
			YColumn:      1,
			CurveSamples: 200,
		},
	}
}

func (con *EvalConfig) ValidPointFile() bool {
	if con.PointFile == "" {
		return false
	}
	_, err := os.Stat(con.PointFile)
	return err == nil
}

func (con *EvalConfig) ValidMethod() bool {
	switch con.Method {
	case "linear", "quadratic", "cubic":
		return true
	}
	return false
}

func (con *EvalConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}

func (con *EvalConfig) ValidCurveSamples() bool {
	return con.CurveSamples >= 2
}

func main() {
	var (
		evalStr       string
		exampleConfig bool
	)

	flag.StringVar(
		&evalStr, "Eval", "",
		"Configuration file for [Eval] mode, followed by the x values "+
			"to evaluate at.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example [Eval] configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(exampleEvalFile)
		return
	}
	if evalStr == "" {
		log.Fatal(
			"You must select a mode. Run with -ExampleConfig for an " +
				"example configuration file.",
		)
	}

	wrap := DefaultEvalWrapper()
	if err := gcfg.ReadFileInto(wrap, evalStr); err != nil {
		log.Fatal(err.Error())
	}
	con := &wrap.Eval

	if !con.ValidPointFile() {
		log.Fatal("Invalid/non-existent 'PointFile' value.")
	} else if !con.ValidMethod() {
		log.Fatal("'Method' must be one of [ linear | quadratic | cubic ].")
	} else if !con.ValidColumns() {
		log.Fatal("Invalid 'XColumn'/'YColumn' values.")
	} else if !con.ValidCurveSamples() {
		log.Fatal("Invalid 'CurveSamples' value.")
	}

	queries, err := parseQueries(flag.Args())
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(queries) == 0 && con.Plot == "" {
		log.Fatal("Must supply at least one query x value or set 'Plot'.")
	}

	in, err := readPoints(con)
	if err != nil {
		log.Fatal(err.Error())
	}
	eval := method(in, con.Method)

	for _, x := range queries {
		y, err := eval(x)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%g %g\n", x, y)
	}

	if con.Plot != "" {
		if err := plotCurve(in, eval, con); err != nil {
			log.Fatal(err.Error())
		}
		plt.Execute()
	}
}

func parseQueries(args []string) ([]float64, error) {
	queries := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("Could not parse query '%s'.", arg)
		}
		queries[i] = x
	}
	return queries, nil
}

// readPoints reads the configured columns of the sample table and
// hands them to the interpolator. Duplicate x values collapse to the
// last occurrence, matching the map-based sample model.
func readPoints(con *EvalConfig) (*interp.Interpolator, error) {
	cols, err := table.ReadTable(
		con.PointFile, []int{con.XColumn, con.YColumn}, nil,
	)
	if err != nil {
		return nil, err
	}

	samples := make(map[float64]float64, len(cols[0]))
	for i := range cols[0] {
		samples[cols[0][i]] = cols[1][i]
	}
	return interp.New(samples)
}

func method(
	in *interp.Interpolator, name string,
) func(float64) (float64, error) {
	switch name {
	case "quadratic":
		return in.Quadratic
	case "cubic":
		return in.Cubic
	}
	return in.Linear
}

// plotCurve draws the samples and a densely evaluated interpolation
// curve spanning the sampled range.
func plotCurve(
	in *interp.Interpolator, eval func(float64) (float64, error),
	con *EvalConfig,
) error {
	keys := in.Keys()
	x0, x1 := keys[0], keys[len(keys)-1]

	n := con.CurveSamples
	dx := (x1 - x0) / float64(n-1)
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
		y, err := eval(xs[i])
		if err != nil {
			return err
		}
		ys[i] = y
	}

	plt.Figure()
	plt.Plot(xs, ys, plt.LW(2))
	plt.Plot(keys, in.Values(), "ok")
	plt.Title(fmt.Sprintf("%s interpolation", con.Method))
	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$y$", plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(con.Plot)

	return nil
}
