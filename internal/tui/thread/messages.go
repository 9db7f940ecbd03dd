package thread

import (
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

// Focus determines which part of the screen receives keys.
type Focus int

const (
	FocusList Focus = iota
	FocusReload
)

// NavigateMsg is emitted when a post item is activated.
type NavigateMsg struct {
	Route  string
	Params components.NavParams
}

// ErrorMsg shows an error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg hides the error banner.
type ClearErrorMsg struct{}
