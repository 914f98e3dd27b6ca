package invoicing

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/gst-lineitems/internal/application/dto"
	"github.com/jhoicas/gst-lineitems/pkg/logger"
)

// BatchTransformUseCase runs TransformOrderUseCase over many independent orders
// with at most Workers in flight. A failing order does not stop the others.
type BatchTransformUseCase struct {
	single  *TransformOrderUseCase
	workers int
	log     *logger.Logger
}

// NewBatchTransformUseCase builds the batch use case; workers < 1 means 1.
func NewBatchTransformUseCase(single *TransformOrderUseCase, workers int, log *logger.Logger) *BatchTransformUseCase {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BatchTransformUseCase{single: single, workers: workers, log: log}
}

type batchOutcome struct {
	res *dto.TransformOrderResponse
	err error
}

// ExecuteAll transforms every request. Results keep request order; failures
// report their position. The returned error is non-nil only when ctx ends first.
func (uc *BatchTransformUseCase) ExecuteAll(ctx context.Context, reqs []dto.TransformOrderRequest) (*dto.BatchTransformResponse, error) {
	outcomes := make([]batchOutcome, len(reqs))

	var g errgroup.Group
	g.SetLimit(uc.workers)
	for i := range reqs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].err = err
				return nil
			}
			res, err := uc.single.Execute(ctx, reqs[i])
			outcomes[i] = batchOutcome{res: res, err: err}
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &dto.BatchTransformResponse{
		Results: lo.FilterMap(outcomes, func(o batchOutcome, _ int) (dto.TransformOrderResponse, bool) {
			if o.err != nil || o.res == nil {
				return dto.TransformOrderResponse{}, false
			}
			return *o.res, true
		}),
	}
	for i, o := range outcomes {
		if o.err != nil {
			out.Failures = append(out.Failures, dto.BatchFailure{Position: i, Error: o.err.Error()})
		}
	}
	uc.log.Info().
		Int("orders", len(reqs)).
		Int("succeeded", len(out.Results)).
		Int("failed", len(out.Failures)).
		Msg("batch classified")
	return out, nil
}
