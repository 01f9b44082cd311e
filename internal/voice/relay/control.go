package relay

import "encoding/json"

func isStop(data []byte) bool {
	var ctrl Control
	if err := json.Unmarshal(data, &ctrl); err != nil {
		return false
	}
	return ctrl.Type == ControlStop
}
