package dock_test

import (
	"embed"
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

//go:embed all:data/**
var testdata embed.FS

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t,
		&sandbox.Options{
			Data: testdata,
			Home: filepath.FromSlash("/home/testuser"),
			User: "testuser",
		}, opts...)
}

// topLevelKeys returns the keys of the JSON object at path in document order.
func topLevelKeys(doc []byte, path string) []string {
	obj := gjson.ParseBytes(doc)
	if path != "" {
		obj = obj.Get(path)
	}
	var keys []string
	obj.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// dockDoc builds a config document whose dock section holds values.
func dockDoc(t interface{ Fatalf(string, ...any) }, values map[string]any) []byte {
	doc := []byte(`{"dock":{}}`)
	for k, v := range values {
		var err error
		doc, err = sjson.SetBytes(doc, "dock."+gjson.Escape(k), v)
		if err != nil {
			t.Fatalf("unable to build fixture: %v", err)
		}
	}
	return doc
}
