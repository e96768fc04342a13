package diagnostics

import (
	"errors"
	"sort"

	"go.uber.org/zap"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

type Collector struct {
	Diags []Diag

	log *zap.Logger
}

func New() *Collector {
	return NewWithLogger(zap.NewNop())
}

func NewWithLogger(log *zap.Logger) *Collector {
	return &Collector{
		Diags: nil,
		log:   log,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	collector.log.Debug("diagnostic",
		zap.Stringer("kind", diag.Kind),
		zap.String("message", diag.Message),
	)
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) Errors() []Diag {
	var errs []Diag
	for _, diag := range collector.Diags {
		if !diag.IsWarning() {
			errs = append(errs, diag)
		}
	}
	return errs
}

func (collector *Collector) Warnings() []Diag {
	var warnings []Diag
	for _, diag := range collector.Diags {
		if diag.IsWarning() {
			warnings = append(warnings, diag)
		}
	}
	return warnings
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Errors()) > 0
}

// Count returns how many diagnostics of the given kind were reported.
func (collector *Collector) Count(kind Kind) int {
	n := 0
	for _, diag := range collector.Diags {
		if diag.Kind == kind {
			n++
		}
	}
	return n
}

// Sorted returns a copy of the diagnostics ordered by position. Diagnostics
// reported at the same position keep their report order.
func (collector *Collector) Sorted() []Diag {
	diags := make([]Diag, len(collector.Diags))
	copy(diags, collector.Diags)
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Pos.Before(diags[j].Pos)
	})
	return diags
}
