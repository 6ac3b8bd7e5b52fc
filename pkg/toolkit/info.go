package toolkit

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// infoExpr asks the interpreter to describe itself as a JSON object.
const infoExpr = `import json, sys; print(json.dumps({"version": "%d.%d.%d" % sys.version_info[:3], "executable": sys.executable, "prefix": sys.prefix}))`

// Info describes the companion interpreter.
type Info struct {
	Version    string // e.g. "3.11.4"
	Executable string // sys.executable
	Prefix     string // sys.prefix
}

// InterpreterInfo queries the companion interpreter for version and location.
func (l *Locator) InterpreterInfo(ctx context.Context) (Info, error) {
	out, err := l.query(ctx, infoExpr)
	if err != nil {
		return Info{}, err
	}

	if !gjson.Valid(out) {
		return Info{}, fmt.Errorf("interpreter info is not valid JSON: %q", out)
	}

	info := Info{
		Version:    gjson.Get(out, "version").String(),
		Executable: gjson.Get(out, "executable").String(),
		Prefix:     gjson.Get(out, "prefix").String(),
	}
	if info.Version == "" {
		return Info{}, fmt.Errorf("interpreter info is missing a version: %q", out)
	}
	return info, nil
}
