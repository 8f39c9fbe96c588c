// Package messaging implements the control channel between the tabbed
// window controller and the control-panel UI surface. Commands arrive as
// JSON script messages, notifications are pushed back as dispatched events.
package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/tabwin/tabwin/internal/domain/entity"
)

// Command is a decoded control-surface command. The set of implementations
// is closed; dispatch happens over an exhaustive type switch so an unknown
// command is an explicit variant, not a lookup miss.
type Command interface {
	isCommand()
}

// NewTabCommand opens a new tab.
type NewTabCommand struct {
	URL           string
	InsertAfterID entity.TabID
	Background    bool
}

// CloseTabCommand closes the tab with the given id.
type CloseTabCommand struct {
	TabID entity.TabID
}

// SwitchTabCommand makes the tab with the given id the active selection.
type SwitchTabCommand struct {
	TabID entity.TabID
}

// ActionCommand runs a named action against the active surface or the host
// window.
type ActionCommand struct {
	Name Action
	// Raw is the original action string for logging unknown names.
	Raw string
}

// ControlReadyCommand signals that the control UI is mounted.
type ControlReadyCommand struct{}

// AddressChangedCommand stores a user-entered URL on a tab without
// navigating. An empty TabID targets the active selection.
type AddressChangedCommand struct {
	TabID entity.TabID
	URL   string
}

// UnknownCommand carries a message type the channel does not recognize.
type UnknownCommand struct {
	Type string
}

func (NewTabCommand) isCommand()         {}
func (CloseTabCommand) isCommand()       {}
func (SwitchTabCommand) isCommand()      {}
func (ActionCommand) isCommand()         {}
func (ControlReadyCommand) isCommand()   {}
func (AddressChangedCommand) isCommand() {}
func (UnknownCommand) isCommand()        {}

// Action names accepted by ActionCommand.
type Action int

const (
	ActionUnknown Action = iota
	ActionReload
	ActionStop
	ActionBack
	ActionForward
	ActionNextTab
	ActionPreviousTab
	ActionCopyURL
	ActionMinimize
	ActionToggleMaximize
	ActionToggleFullscreen
	ActionCloseWindow
)

// ParseAction maps an action name from the wire to an Action. Unknown names
// map to ActionUnknown.
func ParseAction(name string) Action {
	switch name {
	case "reload":
		return ActionReload
	case "stop":
		return ActionStop
	case "back":
		return ActionBack
	case "forward":
		return ActionForward
	case "next-tab":
		return ActionNextTab
	case "prev-tab":
		return ActionPreviousTab
	case "copy-url":
		return ActionCopyURL
	case "minimize":
		return ActionMinimize
	case "maximize":
		return ActionToggleMaximize
	case "fullscreen":
		return ActionToggleFullscreen
	case "close-window":
		return ActionCloseWindow
	default:
		return ActionUnknown
	}
}

// envelope is the wire shape of an inbound control message.
type envelope struct {
	Type       string `json:"type"`
	SurfaceID  uint64 `json:"surfaceId"`
	URL        string `json:"url"`
	TabID      string `json:"tabId"`
	After      string `json:"after"`
	Background bool   `json:"background"`
	Action     string `json:"action"`
}

// DecodeCommand parses a raw JSON control message. The returned surface id
// identifies the message's origin surface for the per-window origin check.
func DecodeCommand(raw string) (Command, uint64, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, 0, fmt.Errorf("decode control message: %w", err)
	}

	switch env.Type {
	case "new-tab":
		return NewTabCommand{
			URL:           env.URL,
			InsertAfterID: entity.TabID(env.After),
			Background:    env.Background,
		}, env.SurfaceID, nil
	case "close-tab":
		return CloseTabCommand{TabID: entity.TabID(env.TabID)}, env.SurfaceID, nil
	case "switch-tab":
		return SwitchTabCommand{TabID: entity.TabID(env.TabID)}, env.SurfaceID, nil
	case "action":
		return ActionCommand{Name: ParseAction(env.Action), Raw: env.Action}, env.SurfaceID, nil
	case "control-ready":
		return ControlReadyCommand{}, env.SurfaceID, nil
	case "address-changed":
		return AddressChangedCommand{
			TabID: entity.TabID(env.TabID),
			URL:   env.URL,
		}, env.SurfaceID, nil
	default:
		return UnknownCommand{Type: env.Type}, env.SurfaceID, nil
	}
}
