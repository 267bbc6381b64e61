// Package manifest renders the manifest.json icons block for a
// generated icon set.
//
// Chrome extension manifests reference only the 16/32/48/128 sizes;
// larger store assets are generated but never listed. The snippet is a
// JSON fragment meant to be pasted into an existing manifest.json.
package manifest

import (
	"bytes"
	"encoding/json"
	"maps"
	"path"
	"slices"
	"strconv"

	"github.com/matzehuels/iconforge/pkg/icongen"
)

// StandardSizes are the icon sizes manifest.json references, ascending.
var StandardSizes = []int{16, 32, 48, 128}

// Icons maps a pixel size to the icon path relative to the extension
// root. It marshals with numerically sorted keys so the snippet reads
// 16, 32, 48, 128 rather than JSON's lexical key order.
type Icons map[int]string

// MarshalJSON implements json.Marshaler with numeric key ordering.
func (ic Icons) MarshalJSON() ([]byte, error) {
	sizes := slices.Sorted(maps.Keys(ic))

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, size := range sizes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.Itoa(size))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ic[size])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FromTargets builds the icons map from a target table. Only targets
// with a standard manifest size are included; dir is the icon
// directory relative to the extension root (slash-separated in the
// manifest regardless of platform).
func FromTargets(targets []icongen.Target, dir string) Icons {
	ic := make(Icons)
	for _, tgt := range targets {
		if slices.Contains(StandardSizes, tgt.Size) {
			ic[tgt.Size] = path.Join(dir, tgt.Filename)
		}
	}
	return ic
}

// Snippet renders the icons map as the manifest.json fragment:
//
//	"icons": {
//	  "16": "icons/icon16.png",
//	  ...
//	}
func Snippet(ic Icons) (string, error) {
	data, err := json.MarshalIndent(ic, "", "  ")
	if err != nil {
		return "", err
	}
	return `"icons": ` + string(data), nil
}
