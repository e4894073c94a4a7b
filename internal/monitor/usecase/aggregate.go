package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"monitor-srv/internal/model"
)

// evaluateAll fans the rule set out over the snapshots with a bounded worker
// pool and joins before returning, so ordering and dedup always see the
// complete finding set. Every shipment is evaluated against every rule with
// the same captured instant.
func (uc *implUseCase) evaluateAll(ctx context.Context, snapshots []model.ShipmentSnapshot, now time.Time) []model.Finding {
	if len(snapshots) == 0 {
		return nil
	}

	workers := uc.cfg.Workers
	if workers > len(snapshots) {
		workers = len(snapshots)
	}

	jobs := make(chan model.ShipmentSnapshot)
	results := make(chan []model.Finding)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for snapshot := range jobs {
				results <- uc.evaluateShipment(ctx, snapshot, now)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, snapshot := range snapshots {
			select {
			case jobs <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var findings []model.Finding
	for batch := range results {
		findings = append(findings, batch...)
	}
	return findings
}

// evaluateShipment runs every rule against one snapshot, in declaration
// order, collecting the findings that fire.
func (uc *implUseCase) evaluateShipment(ctx context.Context, snapshot model.ShipmentSnapshot, now time.Time) []model.Finding {
	var findings []model.Finding
	for _, rule := range uc.rules {
		if finding := uc.evaluateRule(ctx, rule, snapshot, now); finding != nil {
			findings = append(findings, *finding)
		}
	}
	return findings
}

// evaluateRule shields the cycle from a panicking evaluator: the panic is
// logged as an evaluation failure for that shipment and rule, and the cycle
// carries on with the remaining work.
func (uc *implUseCase) evaluateRule(ctx context.Context, rule Rule, snapshot model.ShipmentSnapshot, now time.Time) (finding *model.Finding) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.evaluateRule: %s panicked on %s: %v", rule.Type, snapshot.ShipmentID, r)
			finding = nil
		}
	}()
	return rule.Evaluate(snapshot, now)
}

// dedupFindings keeps one finding per (shipment, type) key, preferring the
// higher severity. On equal severity the earlier finding wins, which within
// a shipment is the earlier-declared rule.
func dedupFindings(findings []model.Finding) []model.Finding {
	if len(findings) < 2 {
		return findings
	}

	seen := make(map[model.FindingKey]int, len(findings))
	out := findings[:0]
	for _, f := range findings {
		i, ok := seen[f.Key()]
		if !ok {
			seen[f.Key()] = len(out)
			out = append(out, f)
			continue
		}
		if f.Severity.Rank() > out[i].Severity.Rank() {
			out[i] = f
		}
	}
	return out
}

// sortFindings orders by severity, most severe first, then by shipment ID.
// The sort is stable so equal keys keep their rule declaration order, making
// dispatch order reproducible across cycles.
func sortFindings(findings []model.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity != findings[j].Severity {
			return findings[i].Severity.Rank() > findings[j].Severity.Rank()
		}
		return findings[i].ShipmentID < findings[j].ShipmentID
	})
}
