// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/cli"
	"github.com/mitchellh/go-homedir"
)

// defaultConfigFile is the config file used when none is given.
const defaultConfigFile = "~/.config/meshinfo/config.toml"

// Config is the configuration of meshinfo, read from a TOML file.
type Config struct {

	// Includes are other config files to load underneath this one.
	Includes []string `toml:"includes"`

	// Material, if set, is the name of the material to render with,
	// overriding the material named by each mesh description.
	Material string `toml:"material"`

	// Shiny is the shininess of the default material.
	Shiny float32 `toml:"shiny" default:"30"`

	// Materials are additional phong materials that descriptions
	// can name, given by their shininess.
	Materials map[string]float32 `toml:"materials"`

	// Tangents is whether to report the tangent space of meshes
	// that have normals and texture coordinates.
	Tangents bool `toml:"tangents"`

	// Triangles is the maximum number of triangles to list.
	Triangles int `toml:"triangles" default:"8"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// openConfig returns the config from the given file, with the
// home directory expanded, or from [defaultConfigFile] if file is empty.
func openConfig(file string) (*Config, error) {
	if file == "" {
		file = defaultConfigFile
	}
	path, err := homedir.Expand(file)
	if err != nil {
		return nil, errors.Log(err)
	}
	cfg := &Config{}
	return cfg, cli.Open(cfg, path)
}
