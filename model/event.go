package model

import (
	"time"

	"github.com/muhammadheryan/classifieds/constant"
)

// ImageOrphanedMessage reports a stored image that lost its owner but could not be removed.
type ImageOrphanedMessage struct {
	Path       string              `json:"path"`
	Scope      constant.ImageScope `json:"scope"`
	Reason     string              `json:"reason"`
	OccurredAt time.Time           `json:"occurred_at"`
}
