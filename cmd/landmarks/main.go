// Command landmarks builds the landmark graph for a generated or file-based
// world, advancing the scheduler in budgeted invocations and persisting its
// state to SQLite between them so a later run can resume with -build.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/config"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/network"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/pipeline"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/scheduler"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/store"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config (default: built-in settings)")
		mapPath    = flag.String("map", "", "text map file; when empty the world is generated from config")
		dbPath     = flag.String("db", "./data/landmarks.db", "SQLite build store (empty to disable persistence)")
		buildID    = flag.String("build", "", "resume an existing build by id")
		steps      = flag.Int("steps", 0, "scheduler invocations to run this time (0 = until done)")
		seed       = flag.Int64("seed", 0, "override world seed for generated terrain")
		list       = flag.Bool("list", false, "list stored builds and exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, options{
		configPath: *configPath,
		mapPath:    *mapPath,
		dbPath:     strings.TrimSpace(*dbPath),
		buildID:    strings.TrimSpace(*buildID),
		steps:      *steps,
		seed:       *seed,
		list:       *list,
	}, os.Stdout, logger); err != nil {
		slog.Error("landmarks failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	mapPath    string
	dbPath     string
	buildID    string
	steps      int
	seed       int64
	list       bool
}

func run(ctx context.Context, o options, out io.Writer, logger *slog.Logger) error {
	var db *store.DB
	if o.dbPath != "" {
		var err error
		if db, err = store.Open(o.dbPath, logger); err != nil {
			return err
		}
		defer db.Close()
		logger.Info("database opened", "path", o.dbPath)
	}
	if o.list {
		if db == nil {
			return errors.New("-list needs -db")
		}
		return listBuilds(ctx, db, out)
	}

	cfg, chunks, err := resolveConfig(ctx, o, db)
	if err != nil {
		return err
	}
	world, fixed, err := loadWorld(ctx, o, db, cfg, chunks)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		chunks = world.Names()
	}

	res, err := pipeline.Build(ctx, world, chunks, cfg, logger)
	if err != nil {
		return err
	}

	st, id, err := openState(ctx, o, db, cfg, chunks, world, fixed)
	if err != nil {
		return err
	}

	for calls := 0; !st.Done() && (o.steps == 0 || calls < o.steps); calls++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("interrupted", "phase", st.Phase)
			break
		}
		ops, err := res.Advance(st)
		if err != nil {
			return err
		}
		logger.Debug("invocation", "call", calls+1, "ops", ops, "phase", st.Phase)
		if db != nil {
			if err := db.SaveState(ctx, id, st); err != nil {
				return err
			}
		}
	}

	if !st.Done() {
		fmt.Fprintf(out, "build %s paused in phase %s; resume with -build %s\n", id, st.Phase, id)
		return nil
	}
	g, err := res.Scheduler.Graph(st)
	if err != nil {
		return err
	}
	if db != nil {
		if err := db.SaveResult(ctx, id, res.Summarize(st)); err != nil {
			return err
		}
	}
	return report(out, id, res, g)
}

// resolveConfig takes settings from the stored build when resuming,
// otherwise from the config file or defaults.
func resolveConfig(ctx context.Context, o options, db *store.DB) (config.Config, []chunk.Name, error) {
	if o.buildID != "" {
		if db == nil {
			return config.Config{}, nil, errors.New("-build needs -db")
		}
		b, err := db.GetBuild(ctx, o.buildID)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg, err := b.Config()
		return cfg, b.ChunkNames(), err
	}

	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, nil, err
		}
	}
	if o.seed != 0 {
		cfg.World.Seed = o.seed
	}
	if o.mapPath != "" {
		return cfg, nil, nil
	}
	return cfg, config.Names(cfg.World.Chunks), nil
}

// errWorldMismatch rejects a -map that differs from the map a resumed build
// was made from.
var errWorldMismatch = errors.New("map does not match build")

// loadWorld returns the terrain for this run and whether it is a fixed map
// rather than generated noise. A resumed build reuses the map stored with it.
func loadWorld(ctx context.Context, o options, db *store.DB, cfg config.Config, chunks []chunk.Name) (*terrain.Map, bool, error) {
	var file *terrain.Map
	if o.mapPath != "" {
		m, err := readMap(o.mapPath, cfg.Topology())
		if err != nil {
			return nil, false, err
		}
		file = m
	}
	if o.buildID == "" {
		if file != nil {
			return file, true, nil
		}
		return terrain.Generate(cfg.Topology(), chunks, cfg.World.GenOptions()), false, nil
	}

	stored, err := db.LoadWorld(ctx, o.buildID, cfg.Topology())
	if errors.Is(err, store.ErrNotFound) {
		if file != nil {
			return nil, false, fmt.Errorf("%w: build %s uses a generated world", errWorldMismatch, o.buildID)
		}
		return terrain.Generate(cfg.Topology(), chunks, cfg.World.GenOptions()), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if file != nil && !sameWorld(file, stored) {
		return nil, false, fmt.Errorf("%w: %s differs from the map of build %s", errWorldMismatch, o.mapPath, o.buildID)
	}
	return stored, true, nil
}

func readMap(path string, topo chunk.Topology) (*terrain.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return terrain.Read(f, topo)
}

func sameWorld(a, b *terrain.Map) bool {
	var x, y bytes.Buffer
	if a.Write(&x) != nil || b.Write(&y) != nil {
		return false
	}
	return bytes.Equal(x.Bytes(), y.Bytes())
}

func openState(ctx context.Context, o options, db *store.DB, cfg config.Config, chunks []chunk.Name,
	world *terrain.Map, fixed bool) (*scheduler.State, string, error) {
	if o.buildID != "" {
		st, err := db.LoadState(ctx, o.buildID)
		if errors.Is(err, store.ErrNotFound) {
			return scheduler.NewState(), o.buildID, nil
		}
		return st, o.buildID, err
	}
	if db == nil {
		return scheduler.NewState(), "(unsaved)", nil
	}
	b, err := db.CreateBuild(ctx, cfg, chunks)
	if err != nil {
		return nil, "", err
	}
	if fixed {
		if err := db.SaveWorld(ctx, b.ID, world); err != nil {
			return nil, "", err
		}
	}
	st := scheduler.NewState()
	return st, b.ID, db.SaveState(ctx, b.ID, st)
}

func listBuilds(ctx context.Context, db *store.DB, out io.Writer) error {
	builds, err := db.ListBuilds(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPHASE\tCHUNKS\tUPDATED")
	for _, b := range builds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Phase, b.Chunks, b.UpdatedAt)
	}
	return tw.Flush()
}

func report(out io.Writer, id string, res *pipeline.Result, g *network.Graph) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "build %s: %d landmarks, %d edges\n\n", id, len(res.Landmarks), len(g.Edges()))
	fmt.Fprintln(tw, "LANDMARK\tHEIGHT\tCELLS")
	for _, lm := range res.Landmarks {
		cells := 0
		if t, ok := res.Territories.Get(lm.ID()); ok {
			cells = len(t.Cells)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", lm.ID(), lm.Height, cells)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "EDGE\tDISTANCE")
	for _, e := range g.Edges() {
		d := fmt.Sprint(e.Distance)
		if !e.Reachable() {
			d = "unreachable"
		}
		fmt.Fprintf(tw, "%s\t%s\n", e.Key(), d)
	}
	return tw.Flush()
}
