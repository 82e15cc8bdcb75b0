// Command pointset loads a file of X Y coordinate pairs and runs a query
// against it.
//
// Usage:
//
//	pointset [flags] dump
//	pointset [flags] size
//	pointset [flags] contains x y
//	pointset [flags] range x0 y0 x1 y1
//	pointset [flags] nearest x y [k]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/crystalix007/pointset/internal/config"
	"github.com/crystalix007/pointset/internal/logger"
	"github.com/crystalix007/pointset/pointset"
)

// errUsage reports a malformed command line.
var errUsage = errors.New("usage")

func main() {
	log := logger.Setup()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.File, "file", cfg.File, "Point file of whitespace separated X Y pairs")
	flag.Func("backend", "Set implementation [tree,ordered]", cfg.SetBackend)
	flag.Func("tolerance", "Point equality tolerance", cfg.SetTolerance)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] dump|size|contains x y|range x0 y0 x1 y1|nearest x y [k]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	set := load(log, cfg)

	if err := run(os.Stdout, set, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			log.Error("invalid command", "error", err)
			flag.Usage()
			os.Exit(2)
		}

		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// load builds the configured set, reading cfg.File if one is set.
func load(log *slog.Logger, cfg config.Config) pointset.Set {
	set := cfg.NewSet()

	if cfg.File == "" {
		return set
	}

	// An unreadable file leaves the set empty, or holding what was read
	// before the failure.
	pairs, err := pointset.Load(set, cfg.File)
	if err != nil {
		log.Warn("point file not fully read", "file", cfg.File, "error", err)
	}

	log.Debug("loaded points",
		"file", cfg.File,
		"backend", cfg.Backend,
		"pairs", pairs,
		"distinct", set.Len(),
	)

	return set
}

// run executes one command against set, writing results to w.
func run(w io.Writer, set pointset.Set, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, args := args[0], args[1:]

	switch cmd {
	case "dump":
		_, err := set.WriteTo(w)

		return err
	case "size":
		_, err := fmt.Fprintln(w, set.Len())

		return err
	case "contains":
		v, err := parseFloats(args, 2)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, set.Contains(pointset.Point{X: v[0], Y: v[1]}))

		return err
	case "range":
		v, err := parseFloats(args, 4)
		if err != nil {
			return err
		}

		return writeCursor(w, set.Range(pointset.Rect{
			Low:  pointset.Point{X: min(v[0], v[2]), Y: min(v[1], v[3])},
			High: pointset.Point{X: max(v[0], v[2]), Y: max(v[1], v[3])},
		}))
	case "nearest":
		k := 1

		if len(args) == 3 {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("%w: k %q: %w", errUsage, args[2], err)
			}

			k = n
			args = args[:2]
		}

		v, err := parseFloats(args, 2)
		if err != nil {
			return err
		}

		return writeCursor(w, set.NearestK(pointset.Point{X: v[0], Y: v[1]}, k))
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// parseFloats parses exactly n numbers from args.
func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", errUsage, n, len(args))
	}

	v := make([]float64, n)

	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}

		v[i] = f
	}

	return v, nil
}

func writeCursor(w io.Writer, c *pointset.Cursor) error {
	for p := range c.All() {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}

	return nil
}
