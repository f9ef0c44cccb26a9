// Package pipeline runs a complete landmark build: distance transform, peak
// extraction and filtering, territory division, then the incremental graph
// scheduler.
//
// Build does the first four stages eagerly and hands back a Scheduler with
// a fresh State. The caller owns that State: it may Advance it one budgeted
// invocation at a time, persist it between invocations, or Finish it in one
// go. Nothing here is shared between builds.
package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/config"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/heightfield"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/network"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/peak"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/scheduler"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/territory"
)

// Result is everything one build produced.
type Result struct {
	Topology    chunk.Topology
	Field       *heightfield.Field
	Peaks       []peak.Landmark
	Landmarks   []peak.Landmark
	Territories territory.Map
	Scheduler   *scheduler.Scheduler
	State       *scheduler.State

	budget int
	log    *slog.Logger
}

// Build runs the eager stages over chunks. ctx is checked between stages.
func Build(ctx context.Context, q terrain.Query, chunks []chunk.Name, cfg config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	topo := cfg.Topology()
	obstacle := cfg.ObstacleTerrain()
	whitelist := config.Names(cfg.Whitelist)

	hopts := []heightfield.Option{
		heightfield.WithTopology(topo),
		heightfield.WithObstacle(obstacle),
		heightfield.WithMaxChunks(cfg.MaxChunks),
	}
	if len(whitelist) > 0 {
		hopts = append(hopts, heightfield.WithWhitelist(whitelist...))
	}
	field, err := heightfield.Compute(q, chunks, hopts...)
	if err != nil {
		return nil, err
	}
	logger.Info("distance transform", "chunks", len(field.Chunks()), "cells", field.Len(), "max_height", field.Max())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	peaks, err := peak.Find(field, q, peak.WithObstacle(obstacle))
	if err != nil {
		return nil, err
	}
	landmarks, err := peak.Filter(peaks,
		peak.WithTopology(topo),
		peak.WithExclusionMultiplier(cfg.ExclusionMultiplier),
		peak.WithMinHeight(cfg.MinHeight),
		peak.WithMaxPeaks(cfg.MaxPeaks),
		peak.WithMaxExclusionRadius(cfg.MaxExclusionRadius),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("landmarks", "plateaus", len(peaks), "kept", len(landmarks))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topts := []territory.Option{
		territory.WithTopology(topo),
		territory.WithObstacle(obstacle),
		territory.WithMaxChunks(cfg.TerritoryMaxChunks),
		territory.WithForeignDepth(cfg.ForeignDepth),
	}
	if len(whitelist) > 0 {
		topts = append(topts, territory.WithWhitelist(whitelist...))
	}
	terrs, err := territory.Divide(landmarks, q, topts...)
	if err != nil {
		return nil, err
	}
	logger.Info("territories", "count", terrs.Len(), "cells", terrs.CellCount())

	sc, err := scheduler.New(terrs, q,
		scheduler.WithTopology(topo),
		scheduler.WithObstacle(obstacle),
		scheduler.WithMaxDistance(cfg.MaxSearchDistance),
		scheduler.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return &Result{
		Topology:    topo,
		Field:       field,
		Peaks:       peaks,
		Landmarks:   landmarks,
		Territories: terrs,
		Scheduler:   sc,
		State:       scheduler.NewState(),
		budget:      cfg.OperationBudget,
		log:         logger,
	}, nil
}

// Advance runs one scheduler invocation with the configured budget.
func (r *Result) Advance(st *scheduler.State) (int, error) {
	return r.Scheduler.Step(st, r.budget)
}

// Finish advances st until done, checking ctx between invocations, and
// returns the finished graph.
func (r *Result) Finish(ctx context.Context, st *scheduler.State) (*network.Graph, error) {
	calls := 0
	for !st.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := r.Advance(st); err != nil {
			return nil, err
		}
		calls++
	}
	g, err := r.Scheduler.Graph(st)
	if err != nil {
		return nil, err
	}
	r.log.Info("graph ready", "invocations", calls, "nodes", len(g.Nodes()), "edges", len(g.Edges()))
	return g, nil
}
