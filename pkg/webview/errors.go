package webview

import "errors"

var (
	ErrWebViewNotInitialized = errors.New("webview: WebView not initialized")
	ErrWebViewDestroyed      = errors.New("webview: WebView destroyed")
	ErrWindowDestroyed       = errors.New("webview: window destroyed")
	ErrInvalidURL            = errors.New("webview: invalid URL")
)
