package nats

import (
	"encoding/json"
	"fmt"
)

// Subjects published by the back office
const (
	SubjectPositionAdded = "driver.position.added"
	SubjectFeeCalculated = "driver.fee.calculated"
)

// PublishJSON marshals a message and publishes it on the given subject
func (c *Client) PublishJSON(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return c.Publish(subject, data)
}
