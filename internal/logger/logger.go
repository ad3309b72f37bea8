// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package logger provides the module's logging on top of
// github.com/sirupsen/logrus.
//
// Every entry handed out by this package carries the name of the package
// which logs through it. Containers only log at Debug, so the default Info
// level keeps them silent.
package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

const packageField = "package"

var base = newBase(os.Stderr)

func newBase(out io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	l.SetLevel(log.InfoLevel)
	return l
}

// Base returns the logger shared by the module.
func Base() *log.Logger {
	return base
}

// For returns an entry which tags every log with pkg.
func For(pkg string) *log.Entry {
	return base.WithField(packageField, pkg)
}

// Wrap tags l with pkg. A nil l falls back to the shared logger.
func Wrap(l log.FieldLogger, pkg string) log.FieldLogger {
	if l == nil {
		return For(pkg)
	}
	return l.WithField(packageField, pkg)
}

// SetOutput redirects the shared logger.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// SetLevel sets the level of the shared logger.
func SetLevel(level log.Level) {
	base.SetLevel(level)
}

// EnableDebug turns debug logging of the shared logger on or off.
func EnableDebug(on bool) {
	if on {
		base.SetLevel(log.DebugLevel)
	} else {
		base.SetLevel(log.InfoLevel)
	}
}
