package amqp

import (
	"encoding/json"
	"time"
)

// ReportRequestMessage asks the report worker to narrate one dataset
// snapshot. The summary text is carried in the message so the worker never
// needs access to the web process's in-memory store.
type ReportRequestMessage struct {
	Version    uint64    `json:"version"`
	ReportType string    `json:"reportType"`
	Summary    string    `json:"summary"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewReportRequestMessage creates a report request for the given snapshot version.
func NewReportRequestMessage(version uint64, reportType, summary string) *ReportRequestMessage {
	return &ReportRequestMessage{
		Version:    version,
		ReportType: reportType,
		Summary:    summary,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportRequestMessageFromJSON creates a message from JSON bytes
func ReportRequestMessageFromJSON(data []byte) (*ReportRequestMessage, error) {
	var msg ReportRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
