package metrics

import (
	"testing"
	"time"

	"insulink/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_RecordUpload(t *testing.T) {
	recorder := NewRecorder()
	before := testutil.ToFloat64(UploadsTotal.WithLabelValues("success"))

	recorder.RecordUpload("success", 20*time.Millisecond)

	assert.InDelta(t, before+1, testutil.ToFloat64(UploadsTotal.WithLabelValues("success")), 0.0001)
	assert.Positive(t, testutil.CollectAndCount(UploadDuration))
}

func TestRecorder_RecordReadings(t *testing.T) {
	recorder := NewRecorder()
	series := entity.SeriesBolus.String()
	insertedBefore := testutil.ToFloat64(ReadingsInsertedTotal.WithLabelValues(series))
	skippedBefore := testutil.ToFloat64(ReadingsSkippedTotal.WithLabelValues(series))

	recorder.RecordReadings(entity.SeriesBolus, 3, 2)
	recorder.RecordReadings(entity.SeriesBolus, 0, 0)

	assert.InDelta(t, insertedBefore+3, testutil.ToFloat64(ReadingsInsertedTotal.WithLabelValues(series)), 0.0001)
	assert.InDelta(t, skippedBefore+2, testutil.ToFloat64(ReadingsSkippedTotal.WithLabelValues(series)), 0.0001)
}

func TestRecorder_RecordReport(t *testing.T) {
	recorder := NewRecorder()
	okBefore := testutil.ToFloat64(ReportsTotal.WithLabelValues("summary", "ok"))
	errBefore := testutil.ToFloat64(ReportsTotal.WithLabelValues("summary", "error"))

	recorder.RecordReport("summary", nil)
	recorder.RecordReport("summary", errors.New("boom"))

	assert.InDelta(t, okBefore+1, testutil.ToFloat64(ReportsTotal.WithLabelValues("summary", "ok")), 0.0001)
	assert.InDelta(t, errBefore+1, testutil.ToFloat64(ReportsTotal.WithLabelValues("summary", "error")), 0.0001)
}
