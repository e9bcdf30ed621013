package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspsearch/cities"
	"github.com/katalvlaran/tspsearch/matrix"
	"github.com/katalvlaran/tspsearch/tsp"
)

//**********************************************************
// config
//**********************************************************

// Config is the YAML layout of a run. Flags set on the command line win
// over values read from the file.
type Config struct {
	Cities   int          `yaml:"cities"`
	Seed     int64        `yaml:"seed"`
	Metric   string       `yaml:"metric"`
	LogLevel string       `yaml:"log-level"`
	DOT      string       `yaml:"dot"`
	Points   []PointSpec  `yaml:"points"`
	AStar    AStarConfig  `yaml:"astar"`
	Anneal   AnnealConfig `yaml:"anneal"`
	Tabu     TabuConfig   `yaml:"tabu"`
}

// PointSpec is an explicit city. With the geodesic metric X is the
// longitude and Y the latitude.
type PointSpec struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type AStarConfig struct {
	Start     int    `yaml:"start"`
	Heuristic string `yaml:"heuristic"`
	Visited   string `yaml:"visited"`
	MaxExact  int    `yaml:"max-exact"`
	MaxNodes  int    `yaml:"max-nodes"`
}

type AnnealConfig struct {
	Temperature float64 `yaml:"temperature"`
	Cooling     float64 `yaml:"cooling"`
	Iterations  int     `yaml:"iterations"`
}

type TabuConfig struct {
	Iterations int `yaml:"iterations"`
	Size       int `yaml:"size"`
}

const (
	metricEuclidean = "euclidean"
	metricGeodesic  = "geodesic"

	heuristicPermutation = "permutation"
	heuristicMST         = "mst"

	visitedShared = "shared"
	visitedPath   = "path"
)

var errBadConfig = errors.New("invalid config")

// DefaultConfig mirrors tsp.DefaultOptions with eight random cities.
func DefaultConfig() Config {
	opts := tsp.DefaultOptions()
	return Config{
		Cities:   8,
		Seed:     1,
		Metric:   metricEuclidean,
		LogLevel: "info",
		AStar: AStarConfig{
			Start:     opts.StartVertex,
			Heuristic: heuristicPermutation,
			Visited:   visitedShared,
			MaxExact:  opts.MaxExactCities,
			MaxNodes:  opts.MaxSearchNodes,
		},
		Anneal: AnnealConfig{
			Temperature: opts.InitialTemperature,
			Cooling:     opts.CoolingRate,
			Iterations:  opts.AnnealingIterations,
		},
		Tabu: TabuConfig{
			Iterations: opts.TabuIterations,
			Size:       opts.MaxTabuSize,
		},
	}
}

// ReadConfig decodes file on top of DefaultConfig, so a file only needs the
// keys it changes.
func ReadConfig(file string) (Config, error) {
	slog.Debug("reading config file", "file", file)
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", file, err)
	}
	return config, nil
}

// Options maps the config onto solver options for algo.
func (c Config) Options(algo tsp.Algorithm) (tsp.Options, error) {
	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.Seed = c.Seed

	opts.StartVertex = c.AStar.Start
	opts.MaxExactCities = c.AStar.MaxExact
	opts.MaxSearchNodes = c.AStar.MaxNodes
	switch c.AStar.Heuristic {
	case "", heuristicPermutation:
		opts.Heuristic = tsp.PermutationBound
	case heuristicMST:
		opts.Heuristic = tsp.SpanningTreeBound
	default:
		return opts, fmt.Errorf("astar.heuristic %q: %w", c.AStar.Heuristic, errBadConfig)
	}
	switch c.AStar.Visited {
	case "", visitedShared:
		opts.Visited = tsp.SharedVisited
	case visitedPath:
		opts.Visited = tsp.PathVisited
	default:
		return opts, fmt.Errorf("astar.visited %q: %w", c.AStar.Visited, errBadConfig)
	}

	opts.InitialTemperature = c.Anneal.Temperature
	opts.CoolingRate = c.Anneal.Cooling
	opts.AnnealingIterations = c.Anneal.Iterations

	opts.TabuIterations = c.Tabu.Iterations
	opts.MaxTabuSize = c.Tabu.Size

	return opts, nil
}

// CityList returns the explicit points when given, random ones otherwise.
func (c Config) CityList() ([]cities.City, error) {
	if len(c.Points) == 0 {
		return cities.Random(c.Cities, c.Seed)
	}
	out := make([]cities.City, len(c.Points))
	for i, p := range c.Points {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("city-%d", i)
		}
		out[i] = cities.City{Name: name, Pos: orb.Point{p.X, p.Y}}
	}
	return out, nil
}

// Distances builds the matrix for cs under the configured metric.
func (c Config) Distances(cs []cities.City) (*matrix.Dense, error) {
	switch c.Metric {
	case "", metricEuclidean:
		return cities.EuclideanMatrix(cs)
	case metricGeodesic:
		return cities.GeodesicMatrix(cs)
	default:
		return nil, fmt.Errorf("metric %q: %w", c.Metric, errBadConfig)
	}
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log-level %q: %w", c.LogLevel, errBadConfig)
	}
	return lvl, nil
}
