// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// A Report describes a batch of summary tables computed from each
// input file. It is read from a YAML file:
//
//	delimiter: ";"
//	group: "|e|"
//	split: rank
//	precision: 3
//	tables:
//	  - title: Nielsen composition time, s
//	    target: time
//	    scale: ms:s
//	  - title: free reduction height
//	    target: free_red_h
//	    aggregates: max, median, min
//	    filter: free_red_h:1..
type Report struct {
	Delimiter string `yaml:"delimiter"`
	Group     string `yaml:"group"`
	Split     string `yaml:"split"`
	Filter    string `yaml:"filter"`
	Precision *int   `yaml:"precision"`
	Format    string `yaml:"format"`

	// Aggregates is the default aggregate list for tables that do
	// not name their own.
	Aggregates string `yaml:"aggregates"`

	Tables []TableSpec `yaml:"tables"`
}

// A TableSpec describes one summary table of a Report.
type TableSpec struct {
	Title      string `yaml:"title"`
	Target     string `yaml:"target"`
	Scale      string `yaml:"scale"`
	Filter     string `yaml:"filter"`
	Aggregates string `yaml:"aggregates"`
}

func loadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var r Report
	if err := dec.Decode(&r); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, t := range r.Tables {
		if t.Target == "" {
			return nil, fmt.Errorf("%s: table %d has no target", path, i+1)
		}
	}
	return &r, nil
}
