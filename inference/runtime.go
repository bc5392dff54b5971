package inference

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"golang.org/x/sys/cpu"
)

var runtimeMu sync.Mutex

// SharedLibraryName is the ONNX Runtime library file name for this platform.
func SharedLibraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libonnxruntime.dylib"
	case "windows":
		return "onnxruntime.dll"
	default:
		return "libonnxruntime.so"
	}
}

// ResolveSharedLibrary accepts either the library file itself or a directory
// containing it. An empty path leaves the choice to onnxruntime_go.
func ResolveSharedLibrary(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("onnxruntime library not found: %s", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	libPath := filepath.Join(path, SharedLibraryName())
	if _, err := os.Stat(libPath); err != nil {
		return "", fmt.Errorf("onnxruntime library not found: %s", libPath)
	}
	return libPath, nil
}

// initializeRuntime sets up the process-wide ONNX Runtime environment once.
func initializeRuntime(libraryPath string) error {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	if ort.IsInitialized() {
		return nil
	}

	libPath, err := ResolveSharedLibrary(libraryPath)
	if err != nil {
		return err
	}
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}
	return nil
}

// DestroyRuntime tears down the ONNX Runtime environment if it was started.
func DestroyRuntime() error {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

// CPUFeatures lists the vector extensions the CPU reports.
func CPUFeatures() []string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX512 {
			features = append(features, "avx512")
		}
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasSSE41 {
			features = append(features, "sse4.1")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasFPHP {
			features = append(features, "fphp")
		}
	}
	return features
}
