// Package version - сведения о сборке dungeon-core: номер, коммит, ветка.
// Их печатает `dungeon version`, отдает /version наблюдателям и пишет в лог при старте сессии.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Заполняются при сборке через -ldflags "-X dungeon-core/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Name - имя программы в строке версии.
const Name = "dungeon-core"

// Номер сборки - дни от первого релиза.
var buildEpoch = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

// VersionInfo - сведения о сборке для /version и логов.
type VersionInfo struct {
	Name       string `json:"name"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Branch     string `json:"branch,omitempty"`
	CI         string `json:"ci,omitempty"`
	GoVersion  string `json:"goVersion"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID - номер сборки по BuildDate.
func CalculateBuildID() (int, error) {
	return buildID(BuildDate)
}

func buildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}
	t, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}
	// обе даты в UTC, сутки ровно по 24 часа
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

func Info() VersionInfo {
	info := VersionInfo{
		Name:      Name,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
		GoVersion: runtime.Version(),
	}
	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String - строка для `dungeon version` и первой записи лога сессии.
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("%s build unknown (%s)", Name, info.Error)
	}

	parts := []string{
		fmt.Sprintf("%s build %d (%s)", Name, info.BuildID, info.BuildDate),
		"commit[" + orDefault(info.Commit, "unknown") + "]",
		"branch[" + orDefault(info.Branch, "unknown") + "]",
		"ci[" + orDefault(info.CI, "local") + "]",
		info.GoVersion,
	}
	return strings.Join(parts, " ")
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
