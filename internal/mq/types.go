package mq

import (
	"time"

	"sitepulse/internal/model"
)

// VisitTag tags visit messages on the topic
const VisitTag = "visit"

// VisitMessage is a visit accepted for asynchronous recording
type VisitMessage struct {
	PublicID   string    `json:"public_id"`
	PagePath   *string   `json:"page_path,omitempty"`
	DeviceType *string   `json:"device_type,omitempty"`
	UserAgent  *string   `json:"user_agent,omitempty"`
	EventID    *string   `json:"event_id,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewVisitMessage wraps a visit request received at the given instant
func NewVisitMessage(publicID string, req *model.RecordVisitRequest, receivedAt time.Time) *VisitMessage {
	return &VisitMessage{
		PublicID:   publicID,
		PagePath:   req.PagePath,
		DeviceType: req.DeviceType,
		UserAgent:  req.UserAgent,
		EventID:    req.EventID,
		ReceivedAt: receivedAt,
	}
}

// Request returns the visit request carried by the message
func (m *VisitMessage) Request() *model.RecordVisitRequest {
	return &model.RecordVisitRequest{
		PagePath:   m.PagePath,
		DeviceType: m.DeviceType,
		UserAgent:  m.UserAgent,
		EventID:    m.EventID,
	}
}
