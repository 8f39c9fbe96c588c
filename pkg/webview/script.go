package webview

import (
	"context"
	"log"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// EvaluateJavascript evaluates JavaScript in the view's main world.
// Fire-and-forget: the evaluation is initiated on the GTK main loop and
// errors are logged. The gotk4 wrapper blocks until the page answers, so it
// waits in a goroutine spawned from the idle handler rather than inside it,
// where the wait would stall the loop.
func EvaluateJavascript(view *webkit.WebView, script string) {
	if view == nil || script == "" {
		return
	}

	glib.IdleAdd(func() bool {
		go func() {
			if _, err := view.EvaluateJavascript(context.Background(), script, len(script), "", ""); err != nil {
				log.Printf("[webview] script evaluation failed: %v", err)
			}
		}()
		return false
	})
}
