package exportline

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tool identifies which review tool produced an export file and therefore
// which grammar its lines follow.
type Tool string

const (
	ToolBaselight Tool = "Baselight"
	ToolFlame     Tool = "Flame"
)

// Parse applies the tool's grammar to one export line.
func (t Tool) Parse(line string) (ParsedLine, error) {
	switch t {
	case ToolBaselight:
		return ParseBaselight(line), nil
	case ToolFlame:
		return ParseFlame(line)
	default:
		return ParsedLine{}, fmt.Errorf("%w: unknown tool %q", ErrMalformedLine, string(t))
	}
}

// Source is the identity metadata carried by an export file's name,
// following the Tool_User_YYYYMMDD.ext convention.
type Source struct {
	Tool     Tool
	FileName string
	User     string
	FileDate time.Time
}

var titleCaser = cases.Title(language.Und)

// ParseSourceName extracts tool, submitting user, and file date from an
// export file path. The base name must follow Tool_User_YYYYMMDD.ext; the
// tool token is normalized so baselight/BASELIGHT variants still select the
// Baselight grammar.
func ParseSourceName(path string) (Source, error) {
	name := filepath.Base(strings.ReplaceAll(path, "\\", "/"))
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return Source{}, fmt.Errorf("export file name %q: want Tool_User_YYYYMMDD.ext", name)
	}

	tool := Tool(titleCaser.String(strings.ToLower(parts[0])))
	switch tool {
	case ToolBaselight, ToolFlame:
	default:
		return Source{}, fmt.Errorf("export file name %q: unknown tool %q", name, parts[0])
	}

	date, err := time.Parse("20060102", parts[2])
	if err != nil {
		return Source{}, fmt.Errorf("export file name %q: bad date %q: %w", name, parts[2], err)
	}

	return Source{
		Tool:     tool,
		FileName: name,
		User:     parts[1],
		FileDate: date,
	}, nil
}
