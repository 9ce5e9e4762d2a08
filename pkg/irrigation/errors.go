package irrigation

import (
	"errors"
	"fmt"
)

var (
	ErrModelNotFound      = errors.New("model not found")
	ErrTrainingInputEmpty = errors.New("training input is empty")
	ErrDataUnavailable    = errors.New("data unavailable")
	ErrHubNotFound        = errors.New("hub not found")
	ErrSensorNotFound     = errors.New("sensor not found")
	ErrStoreUnavailable   = errors.New("store not available")
)

// HubError ties a pipeline failure to the hub it happened on.
type HubError struct {
	HubID string
	Err   error
}

func (e *HubError) Error() string {
	return fmt.Sprintf("hub %s: %v", e.HubID, e.Err)
}

func (e *HubError) Unwrap() error {
	return e.Err
}
