package service

import (
	"time"

	"insulink/internal/domain/entity"
)

// Upload outcomes reported to the UsageRecorder.
const (
	UploadOutcomeSuccess  = "success"
	UploadOutcomeRejected = "rejected"
	UploadOutcomeFailed   = "failed"
)

// UsageRecorder records ingestion and report usage for monitoring.
type UsageRecorder interface {
	// RecordUpload records one device upload and how long it took.
	RecordUpload(outcome string, elapsed time.Duration)

	// RecordReadings records the stored and skipped samples of one series.
	RecordReadings(series entity.Series, inserted, skipped int)

	// RecordReport records one dashboard query.
	RecordReport(name string, err error)
}
