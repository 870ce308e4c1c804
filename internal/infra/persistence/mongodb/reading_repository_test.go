package mongodb

import (
	"testing"
	"time"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMatchUserWindow(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2024, time.January, 5, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC)

	t.Run("unbounded", func(t *testing.T) {
		assert.Equal(t, bson.M{"user_id": userID.String()}, matchUserWindow(userID, entity.DateWindow{}))
	})

	t.Run("both bounds are inclusive calendar dates", func(t *testing.T) {
		filter := matchUserWindow(userID, entity.DateWindow{Start: &start, End: &end})

		assert.Equal(t, bson.M{
			"user_id": userID.String(),
			"date": bson.M{
				"$gte": time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
				"$lte": end,
			},
		}, filter)
	})

	t.Run("open start", func(t *testing.T) {
		filter := matchUserWindow(userID, entity.DateWindow{End: &end})

		assert.Equal(t, bson.M{"$lte": end}, filter["date"])
	})
}

func TestBolusDocumentKeepsMissingWizard(t *testing.T) {
	reading := &entity.BolusReading{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		DeviceID: uuid.New(),
		Date:     time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Time:     "08:15",
		Dose:     3.5,
		Type:     entity.BolusTypeManual,
	}

	doc := fromBolusDomain(reading)
	assert.Nil(t, doc.Wizard)
	assert.Equal(t, reading, toBolusDomain(doc))
}
