package launch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/minelaunch/minelaunch/internal/fetch"
	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/store"
)

// patternLayout replaces the XML console layouts some descriptors ship
// so the JVM's stdout stays plain-text lines, which is what the
// stdout log-level sniffer downstream expects to grep.
const patternLayout = `<PatternLayout pattern="[%d{HH:mm:ss}] [%t/%level]: %msg%n"/>`

// logConfigArgument fetches the descriptor's log4j2 console config (if
// any), rewrites its XML console layout to a plain pattern layout, and
// returns the JVM argument that points the game at the rewritten file.
func logConfigArgument(ctx context.Context, s *store.Store, opts Options, d *mcversion.Descriptor) (string, bool) {
	if d.Logging.Client == nil || d.Logging.Client.File.URL == "" {
		return "", false
	}

	name := filepath.Base(d.Logging.Client.File.Path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "client.xml"
	}

	rawPath := s.LogConfigPath(name + ".raw")
	f := fetch.New()
	f.Client = opts.httpClient()
	if _, err := f.FetchToFile(ctx, d.Logging.Client.File.URL, rawPath, d.Logging.Client.File.Sha1, d.Logging.Client.File.Size); err != nil {
		return "", false
	}

	rewrittenPath := s.LogConfigPath(name)
	if _, err := os.Stat(rewrittenPath); os.IsNotExist(err) {
		raw, err := os.ReadFile(rawPath)
		if err != nil {
			return "", false
		}
		if err := os.WriteFile(rewrittenPath, rewriteLogLayout(raw), 0o644); err != nil {
			return "", false
		}
	}

	return strings.ReplaceAll(d.Logging.Client.Argument, "${path}", rewrittenPath), true
}

func rewriteLogLayout(raw []byte) []byte {
	out := string(raw)
	out = strings.ReplaceAll(out, "<XMLLayout />", patternLayout)
	out = strings.ReplaceAll(out, `<LegacyXMLLayout logEventFlattening="true"/>`, patternLayout)
	return []byte(out)
}
