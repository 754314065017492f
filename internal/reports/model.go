package reports

import (
	"encoding/json"
	"time"
)

// Report is a persisted analysis snapshot. Result holds the full engine
// output as produced at the time; SchemaVersion says how to read it.
type Report struct {
	ID            string          `json:"id"`
	PersonID      string          `json:"personId"`
	Mode          string          `json:"mode"`
	SchemaVersion string          `json:"schemaVersion"`
	Result        json.RawMessage `json:"result"`
	CreatedAt     time.Time       `json:"createdAt"`
}
