package setup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/seaward/nextskill/internal/output"
)

const (
	// HookMarkerBegin marks the start of nextskill-managed content.
	HookMarkerBegin = "# BEGIN nextskill"
	// HookMarkerEnd marks the end of nextskill-managed content.
	HookMarkerEnd = "# END nextskill"
)

// ClaudeHookContent is the hook script content that runs nextskill detect
// at session start. Detection is silent when no Next.js app is present,
// so the hook adds nothing to sessions outside Next.js projects.
var ClaudeHookContent = HookMarkerBegin + `
# Next.js session context injection
if command -v nextskill >/dev/null 2>&1; then
  nextskill hook run session-start 2>/dev/null
fi
` + HookMarkerEnd

// HookStatus describes an installed session hook.
type HookStatus struct {
	Installed bool
	Path      string
	Scope     string
}

// ResolveClaudeHookPath determines the session-start hook path based on
// scope. If project is true, returns a project-local path; otherwise the
// global path under the user's home.
func ResolveClaudeHookPath(project bool) (string, string, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", output.NewSystemErrorWithCause("failed to get working directory", err)
		}
		return filepath.Join(cwd, ".claude", "hooks", "session_start.sh"), "project", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to get home directory", err)
	}
	return filepath.Join(home, ".claude", "hooks", "session_start.sh"), "global", nil
}

// IsSectionInstalled checks if the nextskill section exists in a hook file.
func IsSectionInstalled(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), HookMarkerBegin)
}

// CheckHookStatus reports whether the session hook is installed at
// either scope, preferring project over global.
func CheckHookStatus() HookStatus {
	for _, project := range []bool{true, false} {
		path, scope, err := ResolveClaudeHookPath(project)
		if err != nil {
			continue
		}
		if IsSectionInstalled(path) {
			return HookStatus{Installed: true, Path: path, Scope: scope}
		}
	}
	return HookStatus{}
}

// InstallSection adds or updates the nextskill section in a hook file,
// preserving any unrelated content around it.
func InstallSection(hookPath string) error {
	hookDir := filepath.Dir(hookPath)
	if err := os.MkdirAll(hookDir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create hook directory", err)
	}

	var content string
	existingContent, err := os.ReadFile(hookPath)
	if err == nil {
		content = string(existingContent)
		content = RemoveSectionFromContent(content)
	} else if !os.IsNotExist(err) {
		return output.NewSystemErrorWithCause("failed to read hook file", err)
	}

	if !strings.HasPrefix(content, "#!") {
		content = "#!/bin/bash\n" + content
	}

	content = strings.TrimRight(content, "\n") + "\n\n" + ClaudeHookContent + "\n"

	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to write hook file", err)
	}

	return nil
}

// RemoveSectionFromHook removes the nextskill section from a hook file.
func RemoveSectionFromHook(hookPath string) error {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return output.NewSystemErrorWithCause("failed to read hook file", err)
	}

	newContent := RemoveSectionFromContent(string(content))

	cleaned := strings.TrimSpace(strings.TrimPrefix(newContent, "#!/bin/bash"))
	if cleaned == "" {
		newContent = "#!/bin/bash\n"
	}

	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(hookPath, []byte(newContent), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to write hook file", err)
	}

	return nil
}

// RemoveSectionFromContent removes the nextskill section from a content string.
func RemoveSectionFromContent(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	inSection := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), HookMarkerBegin) {
			inSection = true
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), HookMarkerEnd) {
			inSection = false
			continue
		}
		if !inSection {
			result = append(result, line)
		}
	}

	finalContent := strings.Join(result, "\n")
	for strings.Contains(finalContent, "\n\n\n") {
		finalContent = strings.ReplaceAll(finalContent, "\n\n\n", "\n\n")
	}

	return strings.TrimRight(finalContent, "\n") + "\n"
}
