// SPDX-License-Identifier: Unlicense OR MIT

/*
Package tree implements the toolkit independent parts of a collapsible
tree: reading identifiers and children from caller data, tracking which
nodes are expanded, walking a forest depth first and dispatching presses
whose callbacks may block.

Nodes are opaque values. Only two fields are interpreted, the identifier
and the children, and their names are configured by Keys. Expansion is
recorded per identifier, so nodes sharing an identifier share their
expansion.

The package does no drawing. Package gioui.org/treeview/widget builds a
Gio widget on top of it.
*/
package tree
