// SPDX-License-Identifier: Unlicense OR MIT

// Package forest reads forests from JSON and TOML files.
package forest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"gioui.org/treeview/tree"
)

// TOMLTable is the name of the array of tables holding the roots of a
// TOML forest.
const TOMLTable = "nodes"

// Load reads the forest in the file at path. Files ending in .toml are
// decoded as TOML, all others as JSON.
func Load(path string) ([]tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("forest: %w", err)
	}
	var nodes []tree.Node
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		nodes, err = DecodeTOML(data)
	default:
		nodes, err = DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("forest: %s: %w", path, err)
	}
	return nodes, nil
}

// DecodeJSON decodes a JSON array of nodes. Numbers are kept as
// json.Number so identifiers compare by their text.
func DecodeJSON(data []byte) ([]tree.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var nodes []tree.Node
	if err := dec.Decode(&nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// DecodeTOML decodes the TOMLTable array of tables.
func DecodeTOML(data []byte) ([]tree.Node, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	v, ok := doc[TOMLTable]
	if !ok {
		return nil, fmt.Errorf("missing [[%s]] tables", TOMLTable)
	}
	nodes, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not an array of tables", TOMLTable)
	}
	return nodes, nil
}
