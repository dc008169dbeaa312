package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncUpload()
	IncGenerationStarted()
	IncGenerationCompleted()
	IncGenerationFailed()
	IncPDFConversionFailed()
	ObserveGenerationDurationMs(123)

	out := Render()
	for _, series := range []string{
		"resume_uploads_total",
		"generation_started_total",
		"generation_completed_total",
		"generation_failed_total",
		"pdf_conversion_failed_total",
		"generation_duration_ms_bucket",
		"generation_duration_ms_sum",
		"generation_duration_ms_count",
	} {
		if !strings.Contains(out, series) {
			t.Fatalf("missing series %s in output:\n%s", series, out)
		}
	}
}

func TestObserveClampsNegative(t *testing.T) {
	ObserveGenerationDurationMs(-5)
	if !strings.Contains(Render(), `generation_duration_ms_bucket{le="50"}`) {
		t.Fatalf("expected first bucket present")
	}
}
