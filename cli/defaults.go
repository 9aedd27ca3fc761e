// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli loads the configuration of the mesh tools from
// `default:` struct tags and TOML config files.
package cli

import (
	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/reflectx"
)

// SetFromDefaults sets the values of each of the given config objects
// from their `default:` struct field tag values, leaving fields that
// are already set unchanged. All of the objects are set even if some
// fail, and the errors are logged in addition to being returned,
// wrapped with the type of the failing config.
func SetFromDefaults(cfgs ...any) error {
	var errs []error
	for _, cfg := range cfgs {
		if err := reflectx.SetFromDefaultTags(cfg); err != nil {
			errs = append(errs, errors.Wrapf(err, "cli.SetFromDefaults %T", cfg))
		}
	}
	return errors.Log(errors.Join(errs...))
}
