//go:build windows

package engine

import (
	"ProcPlanet/internal/logger"
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	dwmwaUseImmersiveDarkMode = 20
	dwmwaCaptionColor         = 35
)

// applyWindowTheme gives the title bar the same near-black as the clear colour.
func applyWindowTheme(window *glfw.Window) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}
	handle := uintptr(unsafe.Pointer(hwnd))
	setDwmAttribute(handle, dwmwaUseImmersiveDarkMode, 1)
	setDwmAttribute(handle, dwmwaCaptionColor, 0x00101010)
}

func setDwmAttribute(hwnd uintptr, attribute uintptr, value uint32) {
	ret, _, _ := procDwmSetWindowAttribute.Call(
		hwnd,
		attribute,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
	if ret != 0 {
		// Older Windows builds reject these attributes.
		logger.Log.Debug("DwmSetWindowAttribute failed", zap.Uintptr("attribute", attribute), zap.Uintptr("hresult", ret))
	}
}
