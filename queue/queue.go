package queue

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/errors"
	"github.com/wippyai/mxe-call/pda"
	"github.com/wippyai/mxe-call/schema"
)

// Definitions resolves a comp-def offset to the instruction's definition.
// *schema.Registry implements it.
type Definitions interface {
	GetByOffset(offset uint32) (*schema.Definition, error)
}

// Queue validates computation calls and hands them to a Dispatcher.
// Arguments are checked against the instruction's parameters before any
// dispatch; a mismatched call never reaches the network.
type Queue struct {
	defs       Definitions
	dispatcher Dispatcher
	logger     *zap.Logger
	metrics    *metrics
}

// Option configures a Queue.
type Option func(*queueOptions)

type queueOptions struct {
	logger   *zap.Logger
	registry prometheus.Registerer
}

// WithLogger sets the queue's logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *queueOptions) {
		o.logger = l
	}
}

// WithMetrics registers the queue's collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *queueOptions) {
		o.registry = reg
	}
}

// New creates a Queue.
func New(defs Definitions, dispatcher Dispatcher, opts ...Option) (*Queue, error) {
	if defs == nil {
		return nil, errors.NotInitialized(errors.PhaseDispatch, "definition source")
	}
	if dispatcher == nil {
		return nil, errors.NotInitialized(errors.PhaseDispatch, "dispatcher")
	}

	o := queueOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue{
		defs:       defs,
		dispatcher: dispatcher,
		logger:     o.logger,
	}
	if o.registry != nil {
		q.metrics = newMetrics(o.registry)
	}
	return q, nil
}

// Call is one queue-computation invocation.
type Call struct {
	Accounts          Accounts
	ComputationOffset uint64
	Args              []computation.Argument
	CallbackURL       *string
	Callbacks         []CallbackInstruction
}

// Submit validates call against its definition, encodes it and dispatches
// it. Validation failures are returned with Phase validate and Kind
// mismatch, wrapping the *computation.MatchError.
func (q *Queue) Submit(ctx context.Context, call Call) (*Request, error) {
	if call.Accounts == nil {
		return nil, errors.InvalidInput(errors.PhaseValidate, "call has no accounts")
	}

	offset := call.Accounts.CompDefOffset()
	def, err := q.defs.GetByOffset(offset)
	if err != nil {
		return nil, err
	}

	if err := computation.Check(call.Args, def.Parameters); err != nil {
		q.observeValidation("reject")
		q.logger.Warn("rejected computation call",
			zap.String("definition", def.Name),
			zap.Uint64("computation_offset", call.ComputationOffset),
			zap.Error(err),
		)
		return nil, errors.Validation(def.Name, err)
	}
	q.observeValidation("accept")

	req := &Request{
		ComputationOffset: call.ComputationOffset,
		CompDefOffset:     offset,
		Args:              call.Args,
		MXEProgram:        call.Accounts.MXEProgram(),
		Payer:             call.Accounts.Payer(),
		CallbackURL:       call.CallbackURL,
		Callbacks:         call.Callbacks,
		SignerSeeds:       pda.SignerSeeds(call.Accounts.SignerBump()),
	}

	payload, err := req.MarshalBinary()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Dispatch("context done before dispatch", err)
	}

	start := time.Now()
	err = q.dispatcher.Dispatch(ctx, req, payload)
	q.observeDispatch(err, time.Since(start))
	if err != nil {
		q.logger.Error("dispatch failed",
			zap.String("definition", def.Name),
			zap.Uint64("computation_offset", call.ComputationOffset),
			zap.Error(err),
		)
		return nil, errors.Dispatch("dispatch "+def.Name, err)
	}

	q.logger.Debug("queued computation",
		zap.String("definition", def.Name),
		zap.Uint64("computation_offset", call.ComputationOffset),
		zap.Int("args", len(call.Args)),
		zap.Int("payload_bytes", len(payload)),
	)
	return req, nil
}

func (q *Queue) observeValidation(result string) {
	if q.metrics != nil {
		q.metrics.validationsTotal.WithLabelValues(result).Inc()
	}
}

func (q *Queue) observeDispatch(err error, d time.Duration) {
	if q.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	q.metrics.dispatchTotal.WithLabelValues(status).Inc()
	q.metrics.dispatchDuration.Observe(d.Seconds())
}
