// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aclements/likesplot/chart"
	"github.com/aclements/likesplot/internal/logging"
	"github.com/aclements/likesplot/render"
)

func (a *app) serveCmd() *cobra.Command {
	var flagAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the charts over HTTP",
		Long: `serve serves the page of charts at /, each chart at /charts/<kind>.svg
and /charts/<kind>.png, the age group summary at /summary.json and metrics at
/metrics. The CSV files are read again on every request, so the charts
follow changes to the data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = flagAddr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&flagAddr, "addr", "", "listen on `host:port`")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Msg("serving")
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.Get("/", a.handlePage)
	r.Get("/charts/{file}", a.handleChart)
	r.Get("/summary.json", a.handleSummary)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

func (a *app) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		log := a.log.With().Str("request", middleware.GetReqID(r.Context())).Logger()
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(logging.WithContext(r.Context(), log)))
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (a *app) handlePage(w http.ResponseWriter, r *http.Request) {
	sections := a.buildCharts(r.Context())
	var buf bytes.Buffer
	page := render.Page{Title: "Social Media Likes", Sections: sections}
	if err := render.WritePage(&buf, page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	chartsWritten.WithLabelValues("html").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	a.writeBody(w, r, buf.Bytes())
}

// handleChart serves /charts/<kind>.<format>.
func (a *app) handleChart(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	kind, format := chart.Kind(strings.TrimSuffix(file, ext)), strings.TrimPrefix(ext, ".")
	if format != "svg" && format != "png" {
		http.NotFound(w, r)
		return
	}
	var sec *render.Section
	sections := a.buildCharts(r.Context())
	for i := range sections {
		if sections[i].Kind == kind {
			sec = &sections[i]
		}
	}
	if sec == nil {
		http.NotFound(w, r)
		return
	}
	if sec.Err != nil {
		msg := fmt.Sprintf("could not draw chart from %s: %v", sec.Dataset, sec.Err)
		http.Error(w, msg, http.StatusUnprocessableEntity)
		return
	}

	var buf bytes.Buffer
	var err error
	ctype := "image/svg+xml"
	if format == "svg" {
		err = render.WriteSVG(&buf, sec.Chart)
	} else {
		ctype = "image/png"
		err = render.WritePNG(&buf, sec.Chart, render.PNGOptions{Supersample: a.cfg.Output.PNGScale})
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	chartsWritten.WithLabelValues(format).Inc()
	w.Header().Set("Content-Type", ctype)
	a.writeBody(w, r, buf.Bytes())
}

func (a *app) handleSummary(w http.ResponseWriter, r *http.Request) {
	ss, err := a.summaries()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := writeSummaryJSON(w, ss); err != nil {
		a.logWriteError(r, err)
	}
}

// writeBody writes a response body that is already fully rendered.
// The status line has gone out by the time Write fails, so the error
// can only be logged.
func (a *app) writeBody(w http.ResponseWriter, r *http.Request, body []byte) {
	if _, err := w.Write(body); err != nil {
		a.logWriteError(r, err)
	}
}

func (a *app) logWriteError(r *http.Request, err error) {
	log := logging.FromContext(r.Context(), a.log)
	log.Warn().Err(err).Str("path", r.URL.Path).Msg("could not write response")
}
