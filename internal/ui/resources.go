package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "record-button.svg"
)

// AppIconResource is the application icon: a red dot inside a white ring
var AppIconResource = &fyne.StaticResource{
	StaticName: AppIcon,
	StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="256" height="256" viewBox="0 0 256 256">
<rect width="256" height="256" rx="48" fill="#000000"/>
<circle cx="128" cy="128" r="96" fill="none" stroke="#FFFFFF" stroke-width="12"/>
<circle cx="128" cy="128" r="66" fill="#FF0000"/>
</svg>`),
}
