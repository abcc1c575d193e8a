package engine

import (
	"limitbook/internal/events"
	"limitbook/internal/feed"

	"github.com/rs/zerolog/log"
)

// Engine wires the Central Book Registry, the Matching Core and the Event
// Sink together for a single run (spec §2's control flow). One Engine
// owns one Registry and one Sink — independent batch runs (SPEC_FULL
// §11/§12) each get their own Engine, which is what keeps them safe to
// run concurrently even though nothing inside a single Engine is.
type Engine struct {
	Registry *Registry
	Matcher  *Matcher
	Sink     *events.Sink
}

// New builds a fresh, empty Engine.
func New() *Engine {
	registry := NewRegistry()
	sink := events.NewSink()
	return &Engine{
		Registry: registry,
		Matcher:  NewMatcher(registry, sink),
		Sink:     sink,
	}
}

// Run processes raw rows strictly in input order (spec §2 control flow).
// Admission is evaluated for every row up front — admission is stateless
// per row, so precomputing it is what lets §4.4's MKT-vs-MKT lookahead see
// the normalized price of an order that hasn't been processed yet — but
// each row's Ack/Reject event, and then that order's full matching, is
// still emitted/performed one row at a time, in order, which is what
// produces the interleaved Ack/Fill ordering spec §8 scenario 1 pins down.
//
// A malformed row (spec §7) aborts the run immediately and returns the
// error; no partial output should be trusted by the caller in that case.
func (e *Engine) Run(rows []feed.RawOrder) error {
	admissions := make([]Admission, len(rows))
	for i, row := range rows {
		a, err := Admit(row)
		if err != nil {
			return err
		}
		admissions[i] = a
	}

	admitted := make([]*Order, 0, len(rows))
	for _, a := range admissions {
		if a.Admitted {
			admitted = append(admitted, a.Order)
		}
	}

	admittedIdx := 0
	for _, a := range admissions {
		e.Sink.Append(a.Event)
		if !a.Admitted {
			continue
		}
		if err := e.Matcher.Process(admitted, admittedIdx); err != nil {
			return err
		}
		admittedIdx++
	}

	log.Debug().
		Int("rows", len(rows)).
		Int("admitted", len(admitted)).
		Int("events", e.Sink.Len()).
		Msg("run complete")

	return nil
}
