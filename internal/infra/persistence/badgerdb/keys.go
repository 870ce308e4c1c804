package badgerdb

import (
	"bytes"
	"strings"
	"time"

	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"

	"github.com/google/uuid"
)

// Key layout:
//
//	device/<id>                                   device record
//	device-serial/<serial>                        device id
//	device-user/<user>/<device>                   empty, lists a user's devices
//	user/<id>                                     user record
//	reading/<series>/<user>/<date>/<time>/<device> reading record
//
// Readings sort by date then time of day inside a user prefix.
const (
	devicePrefix       = "device/"
	deviceSerialPrefix = "device-serial/"
	deviceUserPrefix   = "device-user/"
	userPrefix         = "user/"
	readingPrefix      = "reading/"
)

func deviceKey(id uuid.UUID) []byte {
	return []byte(devicePrefix + id.String())
}

func deviceSerialKey(serial string) []byte {
	return []byte(deviceSerialPrefix + serial)
}

func deviceUserKey(userID, deviceID uuid.UUID) []byte {
	return []byte(deviceUserPrefix + userID.String() + "/" + deviceID.String())
}

func deviceUserPrefixKey(userID uuid.UUID) []byte {
	return []byte(deviceUserPrefix + userID.String() + "/")
}

func userKey(id uuid.UUID) []byte {
	return []byte(userPrefix + id.String())
}

func readingUserPrefix(series entity.Series, userID uuid.UUID) []byte {
	return []byte(readingPrefix + series.String() + "/" + userID.String() + "/")
}

func readingKey(series entity.Series, key entity.ReadingKey) []byte {
	var b bytes.Buffer
	b.Write(readingUserPrefix(series, key.UserID))
	b.WriteString(key.Date.Format(calendar.DateLayout))
	b.WriteByte('/')
	b.WriteString(key.Time)
	b.WriteByte('/')
	b.WriteString(key.DeviceID.String())

	return b.Bytes()
}

// readingDate extracts the date segment of a reading key under prefix.
func readingDate(prefix, key []byte) (time.Time, bool) {
	rest := string(key[len(prefix):])
	datePart, _, ok := strings.Cut(rest, "/")
	if !ok {
		return time.Time{}, false
	}

	date, err := time.Parse(calendar.DateLayout, datePart)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// lastSegment returns the part of key after its final slash.
func lastSegment(key []byte) string {
	s := string(key)

	return s[strings.LastIndexByte(s, '/')+1:]
}
