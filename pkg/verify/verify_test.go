package verify

import (
	"strings"
	"testing"
	"time"

	"payproof/pkg/extract"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

var refTime = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

// goodRecord passes every check against cfgShukla and refTime.
func goodRecord() extract.Record {
	return extract.Record{
		Status:        extract.StatusSuccess,
		Amount:        fptr(500),
		TransactionID: sptr("T2508151145000123"),
		ToPerson:      sptr("Vinayak Kumar Shukla"),
		Date:          sptr("15 Aug 2026"),
		Time:          sptr("11:45 AM"),
		PaymentApp:    extract.AppGooglePay,
	}
}

var cfgShukla = Config{TargetPayee: "VINAYAK KUMAR SHUKLA"}

func TestScoreFullPass(t *testing.T) {
	v := Score(goodRecord(), cfgShukla, refTime)
	if !v.Verified {
		t.Fatalf("verified = false, reasons = %v", v.Reasons)
	}
	if v.Score != 100 {
		t.Errorf("score = %v, want 100", v.Score)
	}
	if v.Reasons != nil {
		t.Errorf("reasons = %v, want nil on verified verdict", v.Reasons)
	}
}

func TestScoreFiveOfSixStillVerifies(t *testing.T) {
	rec := goodRecord()
	rec.ToPerson = sptr("Someone Else")
	v := Score(rec, cfgShukla, refTime)
	if v.Score != 83.33 {
		t.Errorf("score = %v, want 83.33", v.Score)
	}
	if !v.Verified {
		t.Errorf("verified = false, want true at 83.33")
	}
	if v.Reasons != nil {
		t.Errorf("reasons = %v, want nil on verified verdict", v.Reasons)
	}
}

func TestScoreBelowThresholdKeepsReasons(t *testing.T) {
	rec := goodRecord()
	rec.ToPerson = nil
	rec.Amount = nil
	v := Score(rec, cfgShukla, refTime)
	if v.Verified {
		t.Fatalf("verified = true at score %v", v.Score)
	}
	if v.Score != 66.67 {
		t.Errorf("score = %v, want 66.67", v.Score)
	}
	if len(v.Reasons) != 2 {
		t.Fatalf("reasons = %v, want 2 entries", v.Reasons)
	}
	if !strings.Contains(v.Reasons[0], "Amount") {
		t.Errorf("reasons not in check order: %v", v.Reasons)
	}
}

func TestScoreTamperOverride(t *testing.T) {
	rec := goodRecord()
	rec.TamperDetected = true
	v := Score(rec, cfgShukla, refTime)
	if v.Verified {
		t.Fatalf("verified = true despite tamper signal")
	}
	if v.Score != 25 {
		t.Errorf("score = %v, want capped at 25", v.Score)
	}
	if len(v.Reasons) != 1 || v.Reasons[0] != "Potential manipulation detected." {
		t.Errorf("reasons = %v", v.Reasons)
	}
}

func TestScoreTamperDoesNotRaiseLowScore(t *testing.T) {
	rec := extract.Record{Status: extract.StatusFailed, TamperDetected: true}
	v := Score(rec, cfgShukla, refTime)
	if v.Verified {
		t.Fatalf("verified = true for failed tampered record")
	}
	if v.Score != 0 {
		t.Errorf("score = %v, want 0 (cap never raises)", v.Score)
	}
}

func TestScoreEverythingMissing(t *testing.T) {
	v := Score(extract.Record{Status: extract.StatusUnknown}, cfgShukla, refTime)
	if v.Verified {
		t.Fatalf("verified = true for empty record")
	}
	// only the tamper check passes
	if v.Score != 16.67 {
		t.Errorf("score = %v, want 16.67", v.Score)
	}
	if len(v.Reasons) != 5 {
		t.Errorf("reasons = %v, want 5 entries", v.Reasons)
	}
}

func TestPayeeFoldsCaseAndWhitespace(t *testing.T) {
	rec := goodRecord()
	rec.ToPerson = sptr("  vinayak   kumar shukla ")
	v := Score(rec, cfgShukla, refTime)
	if !v.Verified || v.Score != 100 {
		t.Errorf("score = %v verified = %v, want folded name to match", v.Score, v.Verified)
	}
}

func TestPayeeEmptyTargetNeverMatches(t *testing.T) {
	v := Score(goodRecord(), Config{}, refTime)
	if v.Score != 83.33 {
		t.Errorf("score = %v, want 83.33 with unset target payee", v.Score)
	}
}

func TestRecencyWindowBounds(t *testing.T) {
	cases := []struct {
		name      string
		date, tim string
		wantScore float64
	}{
		{"exactly at lower bound", "14 Aug 2026", "12:00 PM", 100},
		{"one second too old", "14 Aug 2026", "11:59:59 AM", 91.67},
		{"ten minutes ahead within grace", "15 Aug 2026", "12:10 PM", 100},
		{"one hour in the future", "15 Aug 2026", "1:00 PM", 91.67},
	}
	for _, c := range cases {
		rec := goodRecord()
		rec.Date = sptr(c.date)
		rec.Time = sptr(c.tim)
		v := Score(rec, cfgShukla, refTime)
		if v.Score != c.wantScore {
			t.Errorf("%s: score = %v, want %v", c.name, v.Score, c.wantScore)
		}
	}
}

func TestRecencyMissingVersusUnparsable(t *testing.T) {
	// raise the threshold so the one lost unit fails the verdict and the
	// reason texts survive into it
	cfg := cfgShukla
	cfg.PassThreshold = 90

	rec := goodRecord()
	rec.Date = nil
	rec.Time = nil
	v := Score(rec, cfg, refTime)
	if v.Verified {
		t.Fatalf("verified = true at score %v with threshold 90", v.Score)
	}
	if len(v.Reasons) != 1 || !strings.Contains(v.Reasons[0], "missing") {
		t.Errorf("reasons = %v, want missing date/time reason", v.Reasons)
	}
	if v.Score != 83.33 {
		t.Errorf("score = %v, want 83.33 (whole unit lost)", v.Score)
	}

	rec = goodRecord()
	rec.Date = sptr("99/99/9999")
	rec.Time = sptr("25:99")
	v = Score(rec, cfg, refTime)
	if len(v.Reasons) != 1 || !strings.Contains(v.Reasons[0], "Could not parse") {
		t.Errorf("reasons = %v, want parse failure reason", v.Reasons)
	}
}

func TestReasonsDroppedWhenVerified(t *testing.T) {
	// default threshold 80: losing only the recency unit still verifies, and
	// a verified verdict must carry no reasons
	rec := goodRecord()
	rec.Date = nil
	rec.Time = nil
	v := Score(rec, cfgShukla, refTime)
	if !v.Verified || v.Score != 83.33 {
		t.Fatalf("verified = %v score = %v, want verified at 83.33", v.Verified, v.Score)
	}
	if v.Reasons != nil {
		t.Errorf("reasons = %v, want nil on verified verdict", v.Reasons)
	}
}

func TestRecencyCustomTolerance(t *testing.T) {
	cfg := cfgShukla
	cfg.Tolerance = 72 * time.Hour
	rec := goodRecord()
	rec.Date = sptr("13 Aug 2026")
	rec.Time = sptr("12:00 PM")
	v := Score(rec, cfg, refTime)
	if !v.Verified || v.Score != 100 {
		t.Errorf("score = %v verified = %v, want 48h-old payment inside 72h window", v.Score, v.Verified)
	}
}

func TestScoreIsPure(t *testing.T) {
	rec := goodRecord()
	a := Score(rec, cfgShukla, refTime)
	b := Score(rec, cfgShukla, refTime)
	if a.Score != b.Score || a.Verified != b.Verified {
		t.Errorf("scoring not deterministic: %+v vs %+v", a, b)
	}
}
