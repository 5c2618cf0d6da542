package Export

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// RevealInFileBrowser opens the host file browser on the given path so
// the user can grab an exported file.
func RevealInFileBrowser(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", "-R", path).Start()
	case "windows":
		return exec.Command("explorer", "/select,"+path).Start()
	default:
		dir := path
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			dir = filepath.Dir(path)
		}
		return exec.Command("xdg-open", dir).Start()
	}
}
