package internal

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type InspectRow struct {
	Key       string
	Namespace string
	Timestamp string
	EntityID  string
	Detail    string
}

type StatsProvider func() map[string]any

type pageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

const inspectTemplate = `<!DOCTYPE html>
<html>
<head><title>Storage Inspector</title>
<style>
body { font-family: monospace; margin: 2em; background: #111; color: #ddd; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #444; padding: 4px 8px; text-align: left; }
th { background: #222; }
.stats span { display: inline-block; margin-right: 2em; color: #8c8; }
input { background: #222; color: #ddd; border: 1px solid #444; padding: 4px; }
</style>
</head>
<body>
<h2>Storage Inspector</h2>
<div class="stats">{{range $k, $v := .Stats}}<span>{{$k}}: {{$v}}</span>{{end}}</div>
<form method="get">
<input name="prefix" value="{{.Prefix}}" placeholder="key prefix"/>
<input type="submit" value="scan"/>
</form>
<table>
<tr><th>Key</th><th>Namespace</th><th>Timestamp</th><th>Entity</th><th>Detail</th></tr>
{{range .Items}}<tr><td>{{.Key}}</td><td>{{.Namespace}}</td><td>{{.Timestamp}}</td><td>{{.EntityID}}</td><td>{{.Detail}}</td></tr>
{{end}}
</table>
</body>
</html>`

// StartDebugServer exposes a read-only view over the key/value store for
// local debugging. Never enable it on a public interface: there is no auth
// and it shows raw stored values' sizes and key layout.
func StartDebugServer(log *slog.Logger, db *badger.DB, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.New("inspect").Parse(inspectTemplate))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "msg:"
		}

		data := pageData{Prefix: prefix, Stats: make(map[string]any)}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		log.Info("Debug inspector listening", "port", port)
		_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), mux)
	}()
}

// mapRow decodes the key layouts: "msg:{conv}:{ts}:{id}", "conv:{pair}",
// "user:{id}" and "useridx:{username}".
func mapRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Namespace: "raw",
		Timestamp: "--:--:--",
		EntityID:  "-",
		Detail:    "size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return row
	}
	row.Namespace = parts[0]

	switch parts[0] {
	case "msg":
		if len(parts) >= 4 {
			if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
				row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
			}
			row.EntityID = shorten(parts[3])
			row.Detail = "conversation " + shorten(parts[1]) + ", " + row.Detail
		}
	case "conv", "user", "useridx":
		row.EntityID = shorten(parts[1])
	}
	return row
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
