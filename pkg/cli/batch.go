package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lseu-open/modelscore/pkg/data"
	"github.com/lseu-open/modelscore/pkg/model"
	"github.com/lseu-open/modelscore/pkg/report"
	"github.com/lseu-open/modelscore/pkg/scoring"
)

type batchOptions struct {
	ModelsDir   string
	ResultsDir  string
	Concurrency int
	Save        bool
}

// outcome is the result of scoring one model: either a result envelope
// or the error that stopped it.
type outcome struct {
	Model  string
	Result *report.ModelResult
	Err    error
}

// runBatch scores the named models concurrently. One model failing never
// stops the rest; each outcome is reported in input order.
func runBatch(ctx context.Context, cfg *appConfig, names []string, opts batchOptions) []outcome {
	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	outcomes := make([]outcome, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = outcome{Model: name, Err: err}
				return nil
			}
			res, err := scoreModel(cfg, name, opts)
			outcomes[i] = outcome{Model: name, Result: res, Err: err}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	return outcomes
}

func scoreModel(cfg *appConfig, name string, opts batchOptions) (*report.ModelResult, error) {
	rec, err := model.LoadAndValidate(name, opts.ModelsDir, cfg.Scoring)
	if err != nil {
		return nil, err
	}

	community := rec.Community()
	specs := rec.Specs()

	s := scoring.New(name, cfg.Scoring)
	bd := s.FinalScore(scoring.Inputs{
		EntityBenchmarks: rec.Benchmarks(model.SectionEntityBenchmarks),
		DevBenchmarks:    rec.Benchmarks(model.SectionDevBenchmarks),
		Community: scoring.CommunityInputs{
			ArenaScore: community.ArenaScore,
			HFScore:    community.HFScore,
		},
		Technical: scoring.TechnicalSpecs{
			Price:         specs.Price,
			ContextWindow: specs.ContextWindow,
			ParamCount:    specs.ParamCount,
			Architecture:  specs.Architecture,
		},
	})

	res := &report.ModelResult{
		ModelName: name,
		Scores:    bd,
		InputData: rec,
	}
	slog.Debug("model scored", "model", name, "final", bd.Final)

	if !opts.Save {
		return res, nil
	}

	if _, err := res.Save(opts.ResultsDir); err != nil {
		return nil, err
	}

	row := &data.Result{
		ModelName:      name,
		EntityScore:    bd.Entity,
		DevScore:       bd.Dev,
		CommunityScore: bd.Community,
		TechnicalScore: bd.Technical,
		FinalScore:     bd.Final,
		ScoredAt:       time.Now().UTC(),
	}
	if err := row.Save(cfg.DB); err != nil {
		return nil, fmt.Errorf("persisting result for %s: %w", name, err)
	}

	return res, nil
}
