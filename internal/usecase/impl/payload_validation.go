package impl

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/errors"
	"insulink/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ingestBatch is an upload that passed validation, flattened into rows.
// Rows carry the user ID; the device ID is stamped once the device is resolved.
type ingestBatch struct {
	serial    string
	telemetry entity.DeviceTelemetry
	glucose   []*entity.GlucoseReading
	bolus     []*entity.BolusReading
	basal     []*entity.BasalReading
}

func (b *ingestBatch) stamp(deviceID uuid.UUID) {
	for _, r := range b.glucose {
		r.DeviceID = deviceID
	}
	for _, r := range b.bolus {
		r.DeviceID = deviceID
	}
	for _, r := range b.basal {
		r.DeviceID = deviceID
	}
}

// newPayloadValidator reports fields under their JSON names.
func newPayloadValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// violations collects every problem of one payload.
type violations []domainerrors.FieldViolation

func (v *violations) add(field, reason string) {
	*v = append(*v, domainerrors.FieldViolation{Field: field, Reason: reason})
}

// addValidatorErrors converts struct tag failures.
func (v *violations) addValidatorErrors(err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.add("payload", err.Error())

		return
	}

	for _, fe := range fieldErrs {
		_, field, found := strings.Cut(fe.Namespace(), ".")
		if !found {
			field = fe.Namespace()
		}
		v.add(field, tagReason(fe))
	}
}

func tagReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// Parse helpers skip empty input, which the struct tags already reported.

func (v *violations) date(field, s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	date, err := calendar.ParseDate(s)
	if err != nil {
		v.add(field, "is not a valid date")

		return time.Time{}, false
	}

	return date, true
}

func (v *violations) timestamp(field string, s *string) time.Time {
	if s == nil || *s == "" {
		return time.Time{}
	}
	t, err := calendar.ParseTimestamp(*s)
	if err != nil {
		v.add(field, "is not a valid timestamp")

		return time.Time{}
	}

	return t.UTC()
}

func (v *violations) clock(field, s string) (string, bool) {
	if s == "" {
		return "", false
	}
	clock, err := calendar.NormalizeClock(s)
	if err != nil {
		v.add(field, "is not a valid time of day")

		return "", false
	}

	return clock, true
}

// buildBatch validates the whole payload in one pass and flattens it.
// All problems are returned together in one ValidationError.
func buildBatch(validate *validator.Validate, userID uuid.UUID, payload *usecase.UploadPayload, now time.Time) (*ingestBatch, error) {
	if payload == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{Field: "payload", Reason: "is required"})
	}

	var problems violations
	if err := validate.Struct(payload); err != nil {
		problems.addValidatorErrors(err)
	}

	batch := &ingestBatch{}
	if device := payload.Device; device != nil {
		batch.serial = strings.TrimSpace(device.SerialNumber)
		batch.telemetry = entity.DeviceTelemetry{
			BatteryPercentage:   deref(device.BatteryPercentage),
			ReservoirPercentage: deref(device.TotalReservoir),
			PatchChangedAt:      problems.timestamp("device.dateAndTimeOfPachChange", device.PatchChangedAt),
			ReservoirChangedAt:  problems.timestamp("device.dateAndTimeOfReservoirChange", device.ReservoirChangedAt),
			ReportedAt:          problems.timestamp("device.date", device.ReportedAt),
		}
	}

	for i, day := range payload.Glucose {
		prefix := fmt.Sprintf("Glucose[%d]", i)
		date, dateOK := problems.date(prefix+".date", day.Date)
		for j, sample := range day.Samples {
			field := fmt.Sprintf("%s.BgValue[%d]", prefix, j)
			readingTime, timeOK := problems.clock(field+".readingTime", sample.ReadingTime)
			glucoseType, typeOK := entity.ParseGlucoseType(strings.TrimSpace(sample.Type))
			if !typeOK && sample.Type != "" {
				problems.add(field+".type", "must be one of 0, 1, 2")
			}
			if !dateOK || !timeOK || !typeOK || sample.Value == nil {
				continue
			}

			batch.glucose = append(batch.glucose, &entity.GlucoseReading{
				ID:          uuid.Must(uuid.NewV7()),
				UserID:      userID,
				Date:        date,
				ReadingTime: readingTime,
				Value:       *sample.Value,
				Type:        glucoseType,
				CreatedAt:   now,
			})
		}
	}

	for i, day := range payload.Insulin {
		prefix := fmt.Sprintf("Insulin[%d]", i)
		date, dateOK := problems.date(prefix+".date", day.Date)

		for j, dose := range day.Bolus {
			field := fmt.Sprintf("%s.Bolus[%d]", prefix, j)
			doseTime, timeOK := problems.clock(field+".time", dose.Time)
			bolusType, typeOK := entity.ParseBolusType(strings.TrimSpace(dose.Type))
			if !typeOK && dose.Type != "" {
				problems.add(field+".type", "must be one of 0, 1, 2")
			}
			if !dateOK || !timeOK || !typeOK || dose.Unit == nil {
				continue
			}

			batch.bolus = append(batch.bolus, &entity.BolusReading{
				ID:        uuid.Must(uuid.NewV7()),
				UserID:    userID,
				Date:      date,
				Time:      doseTime,
				Dose:      *dose.Unit,
				Type:      bolusType,
				Wizard:    bolusWizard(dose),
				CreatedAt: now,
			})
		}

		for j, rate := range day.Basal {
			field := fmt.Sprintf("%s.Basal[%d]", prefix, j)
			startTime, startOK := problems.clock(field+".startTime", rate.StartTime)
			endTime, endOK := problems.clock(field+".endTime", rate.EndTime)
			if !dateOK || !startOK || !endOK || rate.Flow == nil {
				continue
			}

			batch.basal = append(batch.basal, &entity.BasalReading{
				ID:        uuid.Must(uuid.NewV7()),
				UserID:    userID,
				Date:      date,
				StartTime: startTime,
				EndTime:   endTime,
				Flow:      *rate.Flow,
				CreatedAt: now,
			})
		}
	}

	if len(problems) > 0 {
		return nil, domainerrors.NewValidationError(problems...)
	}

	return batch, nil
}

// bolusWizard returns nil when the dose carries no calculator fields.
func bolusWizard(dose usecase.BolusDosePayload) *entity.BolusWizard {
	if dose.FromWizard == nil && dose.CarbIntake == nil && dose.InsulinRatio == nil &&
		dose.InsulinSensitivity == nil && dose.LowerBGRange == nil && dose.HigherBGRange == nil &&
		dose.ActiveInsulin == nil {
		return nil
	}

	return &entity.BolusWizard{
		FromWizard:         dose.FromWizard != nil && *dose.FromWizard,
		CarbIntake:         deref(dose.CarbIntake),
		InsulinCarbRatio:   deref(dose.InsulinRatio),
		InsulinSensitivity: deref(dose.InsulinSensitivity),
		LowerBGTarget:      deref(dose.LowerBGRange),
		HigherBGTarget:     deref(dose.HigherBGRange),
		ActiveInsulin:      deref(dose.ActiveInsulin),
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
