package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope every API handler answers with. ErrorCode is 0 on
// success and the HTTP status of the failure otherwise; Data carries the
// payload and is omitted when empty.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// Date renders as a calendar day (DateFormat) in the server's local zone.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime renders as DateTimeFormat in the server's local zone.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
