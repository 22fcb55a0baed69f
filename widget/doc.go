// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of a collapsible tree. A Tree
// keeps expansion and press state across frames and lays out nodes
// with caller supplied functions. Theme packages such as
// `widget/material` provide default node and indicator drawing.
package widget
