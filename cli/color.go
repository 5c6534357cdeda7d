// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"

	"github.com/muesli/termenv"
)

var output = termenv.NewOutput(os.Stdout)

// CmdColor colors the given string as a command or flag name.
func CmdColor(s string) string {
	return output.String(s).Foreground(output.Color("#5fafff")).Bold().String()
}

// ErrorColor colors the given string as an error.
func ErrorColor(s string) string {
	return output.String(s).Foreground(output.Color("#ff5f5f")).Bold().String()
}

// SuccessColor colors the given string as a success message.
func SuccessColor(s string) string {
	return output.String(s).Foreground(output.Color("#5fd75f")).Bold().String()
}

// HighlightColor colors the given string as highlighted text.
func HighlightColor(s string) string {
	return output.String(s).Foreground(output.Color("#ffaf00")).String()
}
