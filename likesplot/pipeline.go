// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aclements/likesplot/chart"
	"github.com/aclements/likesplot/dataset"
	"github.com/aclements/likesplot/group"
	"github.com/aclements/likesplot/internal/logging"
	"github.com/aclements/likesplot/render"
)

// A pipeline loads one dataset and builds one chart from it.
type pipeline struct {
	kind    chart.Kind
	dataset string
	build   func(path string) (chart.Chart, error)
}

func (a *app) pipelines() []pipeline {
	c := a.cfg.Charts
	opts := func(f chart.Frame) chart.Options {
		f.Width, f.Height = c.Width, c.Height
		return chart.Options{Frame: f, YTicks: c.YTicks}
	}
	return []pipeline{
		{chart.KindBoxplot, a.cfg.Data.Raw, func(path string) (chart.Chart, error) {
			t, err := dataset.LoadFile(path)
			if err != nil {
				return nil, err
			}
			obs, err := dataset.Observations(t, dataset.ColAgeGroup, dataset.ColLikes)
			if err != nil {
				return nil, err
			}
			return chart.NewBoxplot(obs, chart.BoxplotOptions{
				Options: opts(chart.DefaultFrame),
				Padding: c.BoxPadding,
			})
		}},
		{chart.KindBarplot, a.cfg.Data.Avg, func(path string) (chart.Chart, error) {
			t, err := dataset.LoadFile(path)
			if err != nil {
				return nil, err
			}
			pairs, err := dataset.Pairs(t, dataset.ColPlatform, dataset.ColPostType, dataset.ColAvgLikes)
			if err != nil {
				return nil, err
			}
			return chart.NewGroupedBar(pairs, chart.GroupedBarOptions{
				Options:      opts(chart.DefaultFrame),
				OuterPadding: c.OuterPadding,
				InnerPadding: c.InnerPadding,
				Palette:      c.Palette,
			})
		}},
		{chart.KindLineplot, a.cfg.Data.Time, func(path string) (chart.Chart, error) {
			t, err := dataset.LoadFile(path)
			if err != nil {
				return nil, err
			}
			obs, err := dataset.Observations(t, dataset.ColDate, dataset.ColAvgLikes)
			if err != nil {
				return nil, err
			}
			return chart.NewTimeSeries(obs, chart.TimeSeriesOptions{Options: opts(chart.LineFrame)})
		}},
	}
}

// buildCharts runs every pipeline concurrently. The error of a
// failed pipeline is recorded in its section and does not affect
// the others. Sections are returned in page order.
func (a *app) buildCharts(ctx context.Context) []render.Section {
	ps := a.pipelines()
	sections := make([]render.Section, len(ps))
	base := logging.FromContext(ctx, a.log)
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range ps {
		sections[i] = render.Section{Kind: p.kind, Dataset: p.dataset}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				sections[i].Err = err
				return nil
			}
			log := logging.Chart(base, string(p.kind), p.dataset)
			start := time.Now()
			c, err := p.build(a.cfg.Data.Path(p.dataset))
			observePipeline(p.kind, time.Since(start), err)
			if err != nil {
				log.Error().Err(err).Msg("could not draw chart")
				sections[i].Err = err
				return nil
			}
			log.Debug().Dur("elapsed", time.Since(start)).Msg("chart built")
			sections[i].Chart = c
			return nil
		})
	}
	g.Wait()
	return sections
}

// summaries loads the raw dataset and summarizes likes by age group.
func (a *app) summaries() ([]group.Summary, error) {
	t, err := dataset.LoadFile(a.cfg.Data.Path(a.cfg.Data.Raw))
	if err != nil {
		return nil, err
	}
	obs, err := dataset.Observations(t, dataset.ColAgeGroup, dataset.ColLikes)
	if err != nil {
		return nil, err
	}
	return group.Summaries(obs, group.FirstSeen)
}
