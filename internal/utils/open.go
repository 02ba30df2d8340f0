package utils

import (
	"os/exec"
	"runtime"
)

// OpenFolder shows path in the platform's file manager.
func OpenFolder(path string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		c = exec.Command("explorer", path)
	case "darwin":
		c = exec.Command("open", path)
	default:
		c = exec.Command("xdg-open", path)
	}
	return c.Start()
}
