package webview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowFeaturesClassify(t *testing.T) {
	var nilFeatures *WindowFeatures
	assert.Equal(t, DispositionForegroundTab, nilFeatures.Classify())

	popup := &WindowFeatures{Width: 400, Height: 300}
	assert.Equal(t, DispositionNewWindow, popup.Classify())

	chromeful := &WindowFeatures{Width: 400, Height: 300, ToolbarVisible: true}
	assert.Equal(t, DispositionForegroundTab, chromeful.Classify())

	unsized := &WindowFeatures{}
	assert.Equal(t, DispositionForegroundTab, unsized.Classify())
}

func TestCreateRequestDisposition(t *testing.T) {
	popup := &CreateRequest{
		TargetURI: "https://example.com/auth",
		Features:  &WindowFeatures{Width: 500, Height: 600},
	}
	assert.Equal(t, DispositionNewWindow, popup.Disposition())

	gesture := &CreateRequest{
		TargetURI:     "https://example.com",
		FrameName:     "_blank",
		IsUserGesture: true,
	}
	assert.Equal(t, DispositionForegroundTab, gesture.Disposition())

	scripted := &CreateRequest{TargetURI: "https://example.com/ad"}
	assert.Equal(t, DispositionBackgroundTab, scripted.Disposition())
}
