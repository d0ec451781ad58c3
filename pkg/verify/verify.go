// Package verify scores an extracted payment record against fixed business
// rules and produces a pass/fail verdict with an explainable percentage and
// per-check failure reasons.
package verify

import (
	"fmt"
	"math"
	"strings"
	"time"

	"payproof/pkg/extract"
)

// Config carries the injectable scoring knobs. Zero values fall back to the
// documented defaults, so Config{TargetPayee: "..."} is a valid config.
type Config struct {
	// TargetPayee is the payee name a screenshot must show.
	TargetPayee string
	// Tolerance is the maximum accepted payment age. Default 24h.
	Tolerance time.Duration
	// FutureGrace absorbs small clock skew on the paying device. Default 15m.
	FutureGrace time.Duration
	// PassThreshold is the score at or above which the verdict passes. Default 80.
	PassThreshold float64
	// TamperCeiling caps the reported score when tampering was detected, so
	// the override is visible instead of a possibly-high raw percentage.
	// Default 25.
	TamperCeiling float64
}

func (c Config) withDefaults() Config {
	if c.Tolerance <= 0 {
		c.Tolerance = 24 * time.Hour
	}
	if c.FutureGrace <= 0 {
		c.FutureGrace = 15 * time.Minute
	}
	if c.PassThreshold <= 0 {
		c.PassThreshold = 80
	}
	if c.TamperCeiling <= 0 {
		c.TamperCeiling = 25
	}
	return c
}

// Verdict is the scoring result. Reasons is empty exactly when Verified is
// true, and otherwise lists every failed check in check order.
type Verdict struct {
	Verified bool     `json:"verified"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
}

// checkResult is one check's contribution: earned units out of max, plus a
// reason when anything was lost.
type checkResult struct {
	earned float64
	max    float64
	reason string
}

func pass() checkResult                 { return checkResult{earned: 1, max: 1} }
func fail(reason string) checkResult    { return checkResult{max: 1, reason: reason} }
func partial(reason string) checkResult { return checkResult{earned: 0.5, max: 1, reason: reason} }

// Score evaluates rec against the fixed ordered check list. It is pure and
// state-free: the clock is the explicit reference argument, never read here.
// Missing record fields simply fail their check; Score itself never fails.
func Score(rec extract.Record, cfg Config, reference time.Time) Verdict {
	cfg = cfg.withDefaults()

	results := []checkResult{
		checkStatus(rec),
		checkAmount(rec),
		checkReference(rec),
		checkPayee(rec, cfg.TargetPayee),
		checkRecency(rec, reference, cfg.Tolerance, cfg.FutureGrace),
		checkTamper(rec),
	}

	var earned, total float64
	var reasons []string
	for _, r := range results {
		earned += r.earned
		total += r.max
		if r.reason != "" {
			reasons = append(reasons, r.reason)
		}
	}

	score := math.Round(earned/total*10000) / 100
	verified := score >= cfg.PassThreshold

	// A confirmed tamper signal dominates the aggregate: it must not merely
	// subtract one unit from six.
	if rec.TamperDetected {
		verified = false
		if score > cfg.TamperCeiling {
			score = cfg.TamperCeiling
		}
	}

	if verified {
		reasons = nil
	}
	return Verdict{Verified: verified, Score: score, Reasons: reasons}
}

func checkStatus(rec extract.Record) checkResult {
	if rec.Status == extract.StatusSuccess {
		return pass()
	}
	return fail(fmt.Sprintf("Status is not successful. Detected: %s", rec.Status))
}

func checkAmount(rec extract.Record) checkResult {
	if rec.Amount != nil && *rec.Amount > 0 {
		return pass()
	}
	return fail("Amount could not be detected or is invalid.")
}

func checkReference(rec extract.Record) checkResult {
	if rec.HasReference() {
		return pass()
	}
	return fail("No valid transaction/reference ID found.")
}

func checkPayee(rec extract.Record, target string) checkResult {
	detected := ""
	if rec.ToPerson != nil {
		detected = *rec.ToPerson
	}
	if target != "" && foldName(detected) == foldName(target) {
		return pass()
	}
	return fail(fmt.Sprintf("Paid-to person does not match '%s'. Detected: '%s'.", target, detected))
}

// checkRecency is the one two-half-unit check: half for a present and
// parseable timestamp, half for landing inside
// [reference-tolerance, reference+grace]. The lower bound is inclusive.
func checkRecency(rec extract.Record, reference time.Time, tolerance, grace time.Duration) checkResult {
	if rec.Date == nil || rec.Time == nil {
		return fail("Payment date/time is missing from the screenshot.")
	}
	ts, ok := ParseDateTime(*rec.Date, *rec.Time, reference.Location())
	if !ok {
		return fail(fmt.Sprintf("Could not parse payment date/time: '%s %s'.", *rec.Date, *rec.Time))
	}
	if ts.After(reference.Add(grace)) {
		return partial("Payment date/time is in the future.")
	}
	if ts.Before(reference.Add(-tolerance)) {
		return partial(fmt.Sprintf("Payment is older than the allowed window of %s.", tolerance))
	}
	return pass()
}

func checkTamper(rec extract.Record) checkResult {
	if !rec.TamperDetected {
		return pass()
	}
	return fail("Potential manipulation detected.")
}

// foldName compares names case- and whitespace-insensitively.
func foldName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
