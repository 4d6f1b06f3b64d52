// Package routing solves the single-day visiting-order problem: a
// single-vehicle time-windowed Hamiltonian path where optional places may be
// skipped for a fixed penalty. The search is a deterministic depth-first
// branch-and-bound with a wall-clock budget; given a generous budget it
// explores the full tree and the achieved objective is exact.
package routing

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
)

// ErrInfeasible reports that no assignment satisfying the hard constraints
// was found within the search budget. It is an expected outcome for some
// meal combinations, not a failure of the service.
var ErrInfeasible = errors.New("no feasible route within budget")

const (
	dummyStartID = "dummy_start"
	dummyEndID   = "dummy_end"
)

// Options tune the optimizer's penalties and budget.
type Options struct {
	// SkipPenalty is charged for omitting an optional place.
	SkipPenalty int64
	// LatenessCoeff is charged per minute of arrival past a window's
	// un-buffered close.
	LatenessCoeff int64
	// GraceMinutes widens every hard window bound on both sides.
	GraceMinutes int
	// TimeBudget caps the wall-clock time of one Solve call.
	TimeBudget time.Duration
}

func DefaultOptions() Options {
	return Options{
		SkipPenalty:   1000,
		LatenessCoeff: 10,
		GraceMinutes:  10,
		TimeBudget:    10 * time.Second,
	}
}

// Input is one optimization instance. Places, Windows and Matrix are
// index-aligned; the matrix covers the real places only, dummy anchors are
// injected internally with zero cost to and from every node.
type Input struct {
	Places      []domain.Place
	Windows     []domain.Window
	Anchors     domain.Anchors
	GlobalStart int
	GlobalEnd   int
	Matrix      [][]int
}

type Optimizer struct {
	opts   Options
	logger *zap.Logger
}

func NewOptimizer(opts Options, logger *zap.Logger) *Optimizer {
	return &Optimizer{opts: opts, logger: logger}
}

// model is the normalized instance the search runs on, with dummy anchors
// already materialized.
type model struct {
	places  []domain.Place
	windows []domain.Window
	matrix  [][]int
	service []int
	dummy   []bool

	start, end int
	gs, ge     int

	// Per-node hard bounds and un-buffered close; meaningless for anchors.
	lo, hi    []int
	softClose []int

	mandatory []bool
	visitable []bool
	skipCost  int64
	lateCoeff int64
}

// arcCost prices a traversal from i to j: travel plus the service time
// charged on departure from i. Arcs touching a dummy anchor are free.
func (m *model) arcCost(i, j int) int64 {
	if m.dummy[i] || m.dummy[j] {
		return 0
	}
	return int64(m.matrix[i][j] + m.service[i])
}

// travel is the raw travel time from i to j used for arrival propagation.
func (m *model) travel(i, j int) int {
	if m.dummy[i] || m.dummy[j] {
		return 0
	}
	return m.matrix[i][j]
}

// Solve finds the lowest-objective route honoring the contract: start anchor
// first with arrival pinned to the global start, end anchor last within
// [0, globalEnd], every mandatory non-anchor node visited inside its buffered
// window, optional nodes visited or skipped for a penalty.
func (o *Optimizer) Solve(ctx context.Context, in Input) (*domain.RouteResult, error) {
	m := o.buildModel(in)

	// A mandatory node whose buffered window is empty can never be visited;
	// no sequence is feasible.
	for i := range m.places {
		if i == m.start || i == m.end {
			continue
		}
		if m.mandatory[i] && !m.visitable[i] {
			o.logger.Debug("Mandatory place has empty buffered window",
				zap.String("place_id", m.places[i].ID))
			return nil, ErrInfeasible
		}
	}

	deadline := time.Now().Add(o.opts.TimeBudget)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	s := newSearcher(m, deadline)
	best := s.run()
	if best == nil {
		return nil, ErrInfeasible
	}

	if s.expired {
		o.logger.Debug("Search budget expired, returning best-so-far",
			zap.Int64("objective", best.cost))
	}

	return o.extract(m, best), nil
}

func (o *Optimizer) buildModel(in Input) *model {
	n := len(in.Places)

	m := &model{
		places:    append([]domain.Place(nil), in.Places...),
		windows:   append([]domain.Window(nil), in.Windows...),
		gs:        in.GlobalStart,
		ge:        in.GlobalEnd,
		skipCost:  o.opts.SkipPenalty,
		lateCoeff: o.opts.LatenessCoeff,
	}

	m.start = in.Anchors.Start.Index
	m.end = in.Anchors.End.Index
	if in.Anchors.End.Synthetic {
		m.end = len(m.places)
		m.appendDummy(dummyEndID)
	}
	if in.Anchors.Start.Synthetic {
		m.start = len(m.places)
		m.appendDummy(dummyStartID)
	}

	total := len(m.places)

	// Copy the matrix and zero-extend it over the injected dummies. Dummy
	// arcs are priced by arcCost anyway; the extension keeps indexing safe.
	m.matrix = make([][]int, total)
	for i := 0; i < total; i++ {
		m.matrix[i] = make([]int, total)
		if i < n {
			copy(m.matrix[i], in.Matrix[i])
		}
	}

	m.service = make([]int, total)
	m.dummy = make([]bool, total)
	m.mandatory = make([]bool, total)
	m.visitable = make([]bool, total)
	m.lo = make([]int, total)
	m.hi = make([]int, total)
	m.softClose = make([]int, total)

	for i := range m.places {
		p := &m.places[i]
		m.service[i] = p.ServiceTime
		m.dummy[i] = p.IsDummy()
		m.mandatory[i] = p.IsMandatory && !m.dummy[i]

		win := m.windows[i]
		m.lo[i] = maxInt(m.gs, win.Open-o.opts.GraceMinutes)
		m.hi[i] = minInt(m.ge, win.Close+o.opts.GraceMinutes)
		m.softClose[i] = win.Close
		m.visitable[i] = m.lo[i] <= m.hi[i]
	}

	return m
}

func (m *model) appendDummy(id string) {
	m.places = append(m.places, domain.Place{
		ID:       id,
		Name:     id,
		Category: domain.CategoryDummy,
	})
	m.windows = append(m.windows, domain.Window{Open: m.gs, Close: m.ge})
}

// extract converts the winning sequence into reported visits. Dummy anchors
// are dropped; order is 1-based over the remaining stops. Wait is the slack
// between the expected and actual arrival, delay its negative counterpart.
func (o *Optimizer) extract(m *model, sol *solution) *domain.RouteResult {
	visits := make([]domain.RouteVisit, 0, len(sol.seq))

	order := 1
	prev := -1
	prevDeparture := 0

	for pos, node := range sol.seq {
		if m.dummy[node] {
			continue
		}

		arrival := sol.arrivals[pos]
		stay := m.service[node]
		if node == m.end {
			stay = 0
		}

		visit := domain.RouteVisit{
			Order:     order,
			PlaceID:   m.places[node].ID,
			PlaceName: m.places[node].Name,
			Arrival:   arrival,
			Departure: arrival + stay,
			Stay:      stay,
		}

		if prev >= 0 {
			travel := m.matrix[prev][node]
			visit.Travel = &travel

			gap := arrival - (prevDeparture + travel)
			if gap > 0 {
				wait := gap
				visit.Wait = &wait
			} else if gap < 0 {
				delay := -gap
				visit.Delay = &delay
			}
		}

		visits = append(visits, visit)
		order++
		prev = node
		prevDeparture = arrival + m.service[node]
	}

	return &domain.RouteResult{
		Visits:    visits,
		Objective: sol.cost,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
