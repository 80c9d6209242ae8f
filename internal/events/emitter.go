package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt StatusEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt StatusEvent) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt StatusEvent)) {
	if f == nil {
		Emit = func(context.Context, string, StatusEvent) {}
		return
	}
	Emit = f
}
