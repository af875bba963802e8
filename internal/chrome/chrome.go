// Package chrome launches a local Chrome with the remote debugging port open
// so a browser profile can be signed in once and reused by the agent.
package chrome

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"cartscout/internal/errors"
)

// DefaultPort is the conventional CDP debugging port
const DefaultPort = 9222

// Options configures the debug browser launch
type Options struct {
	Port        int
	ProfileName string
	Executable  string // override auto-detection
	LogF        func(format string, args ...any)
}

// withDefaults fills the zero-value fields callers commonly leave unset
func (o Options) withDefaults() Options {
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	if o.ProfileName == "" {
		o.ProfileName = "Default"
	}
	return o
}

// DefaultExecutable returns the Chrome binary for the current platform
func DefaultExecutable() (string, error) {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		}
	case "windows":
		candidates = []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
	default:
		candidates = []string{
			"/usr/bin/google-chrome",
			"/usr/bin/chromium-browser",
			"/usr/bin/chromium",
		}
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("chrome not found (tried %s)", strings.Join(candidates, ", "))
}

// profileBase returns where the current platform keeps Chrome profiles
func profileBase() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library/Application Support/Google/Chrome"), nil
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "Google", "Chrome", "User Data"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config/google-chrome"), nil
	}
}

// FreePort kills the process already listening on the debug port, if any.
// Only the first listed PID is killed: that is the previous automation
// session, not the user's main browser.
func FreePort(port int, logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if runtime.GOOS == "windows" {
		out, err := exec.Command("netstat", "-ano", "-p", "TCP").Output()
		if err != nil {
			logf("could not check port %d: %v", port, err)
			return
		}
		needle := fmt.Sprintf(":%d", port)
		for _, line := range strings.Split(string(out), "\n") {
			if strings.Contains(line, needle) && strings.Contains(line, "LISTENING") {
				fields := strings.Fields(line)
				pid := fields[len(fields)-1]
				logf("stopping previous automation session (PID %s)", pid)
				_ = exec.Command("taskkill", "/F", "/PID", pid).Run()
				time.Sleep(2 * time.Second)
				return
			}
		}
		return
	}

	out, err := exec.Command("lsof", "-i", fmt.Sprintf(":%d", port), "-t").Output()
	if err != nil || strings.TrimSpace(string(out)) == "" {
		return
	}
	pid := strings.Split(strings.TrimSpace(string(out)), "\n")[0]
	logf("stopping previous automation session (PID %s)", pid)
	_ = exec.Command("kill", pid).Run()
	time.Sleep(2 * time.Second)
}

// Launch starts Chrome with remote debugging enabled on opts.Port and blocks
// until the browser exits. The named profile is copied into a temporary
// directory first so the live profile is never mutated; the copy is removed
// on exit and on SIGINT/SIGTERM.
func Launch(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	logf := opts.LogF
	if logf == nil {
		logf = func(string, ...any) {}
	}

	FreePort(opts.Port, logf)

	exe := opts.Executable
	if exe == "" {
		var err error
		exe, err = DefaultExecutable()
		if err != nil {
			return errors.NewLaunchError("locate chrome", err)
		}
	}

	automationDir, err := os.MkdirTemp("", "chrome-automation-")
	if err != nil {
		return errors.NewLaunchError("create temp dir", err)
	}
	cleanup := func() {
		os.RemoveAll(automationDir)
	}
	defer cleanup()

	base, err := profileBase()
	if err != nil {
		return errors.NewLaunchError("locate profile base", err)
	}
	sourceProfile := filepath.Join(base, opts.ProfileName)
	destProfile := filepath.Join(automationDir, opts.ProfileName)

	if _, statErr := os.Stat(sourceProfile); statErr == nil {
		logf("copying %s profile to temporary directory", opts.ProfileName)
		if err := os.CopyFS(destProfile, os.DirFS(sourceProfile)); err != nil {
			return errors.NewLaunchError("copy profile", err)
		}
	} else {
		logf("profile %s not found at %s, creating empty profile", opts.ProfileName, sourceProfile)
		if err := os.MkdirAll(destProfile, 0o755); err != nil {
			return errors.NewLaunchError("create profile dir", err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(0)
	}()

	logf("launching chrome with remote debugging on port %d", opts.Port)
	cmd := exec.CommandContext(ctx, exe,
		fmt.Sprintf("--remote-debugging-port=%d", opts.Port),
		fmt.Sprintf("--user-data-dir=%s", automationDir),
		fmt.Sprintf("--profile-directory=%s", opts.ProfileName),
	)
	if err := cmd.Run(); err != nil {
		return errors.NewLaunchError("run chrome", err)
	}
	return nil
}
