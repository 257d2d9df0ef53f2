package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Offline dump of the stored keyspaces. Run it against a stopped server's
// data directory, e.g.:
//
//	go run ./cmd/inspect -db ./data/badger -prefix msg:
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, conv:, user:, useridx:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Namespace", "Timestamp", "Entity ID", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append(toRow(key, v))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func toRow(key string, val []byte) []string {
	parts := strings.Split(key, ":")
	namespace := parts[0]
	timestamp := "--:--:--"
	entityID := "-"
	detail := fmt.Sprintf("size: %d bytes", len(val))

	var record map[string]any
	decoded := json.Unmarshal(val, &record) == nil

	switch namespace {
	case "msg":
		if len(parts) >= 4 {
			entityID = lo.Substring(parts[3], 0, 8)
		}
		if decoded {
			if at, err := time.Parse(time.RFC3339Nano, str(record, "created_at")); err == nil {
				timestamp = at.Format("15:04:05")
			}
			detail = fmt.Sprintf("%s -> %s: %s",
				lo.Substring(str(record, "sender_id"), 0, 8),
				lo.Substring(str(record, "receiver_id"), 0, 8),
				lo.Ellipsis(str(record, "message"), 48))
		}
	case "conv":
		if decoded {
			entityID = lo.Substring(str(record, "id"), 0, 8)
			if at, err := time.Parse(time.RFC3339Nano, str(record, "created_at")); err == nil {
				timestamp = at.Format("15:04:05")
			}
			detail = strings.Join(strs(record, "participants"), " | ")
		}
	case "user":
		if len(parts) >= 2 {
			entityID = lo.Substring(parts[1], 0, 8)
		}
		if decoded {
			detail = str(record, "username")
		}
	case "useridx":
		entityID = parts[len(parts)-1]
		detail = lo.Substring(string(val), 0, 8)
	}

	return []string{key, namespace, timestamp, entityID, detail}
}

func str(record map[string]any, field string) string {
	s, _ := record[field].(string)
	return s
}

func strs(record map[string]any, field string) []string {
	values, _ := record[field].([]any)
	return lo.FilterMap(values, func(v any, _ int) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
