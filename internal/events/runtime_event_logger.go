package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, event StatusEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal status event: "+err.Error())
		return
	}

	payload := string(data)

	switch event.Severity {
	case SeverityError:
		runtime.LogError(ctx, payload)
	case SeverityWarning:
		runtime.LogWarning(ctx, payload)
	default:
		runtime.LogInfo(ctx, payload)
	}
}
