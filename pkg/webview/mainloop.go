package webview

import (
	"runtime"
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

var (
	mainLoop *glib.MainLoop
	initOnce sync.Once
)

// InitMainThread locks the calling goroutine to its OS thread. Call it from
// main before any GTK operation; that thread becomes the GTK main thread
// once RunMainLoop acquires the default main context on it.
func InitMainThread() {
	initOnce.Do(runtime.LockOSThread)
}

// RunMainLoop starts the GTK main event loop.
// This function blocks until QuitMainLoop is called.
func RunMainLoop() {
	InitMainThread()

	if mainLoop == nil {
		mainLoop = glib.NewMainLoop(nil, false)
	}

	mainLoop.Run()
}

// QuitMainLoop stops the GTK main event loop.
func QuitMainLoop() {
	if mainLoop != nil {
		mainLoop.Quit()
	}
}

// IsMainThread reports whether the caller runs on the thread that owns the
// default GLib main context, which is the thread driving the GTK main loop.
func IsMainThread() bool {
	return glib.MainContextDefault().IsOwner()
}

// RunOnMainThread executes a function on the GTK main thread.
// If already on the main thread, executes immediately.
// Otherwise, schedules the function via glib.IdleAdd.
func RunOnMainThread(fn func()) {
	if IsMainThread() {
		fn()
		return
	}

	glib.IdleAdd(func() bool {
		fn()
		return false // Remove the idle handler after execution
	})
}
