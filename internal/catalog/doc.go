// Package catalog holds the static step and package lists.
//
// The lists are hardcoded; there is no external configuration file. Two
// profiles exist: the default desktop stack, and a full variant adding a
// bespoke library build that registers a virtual package with dpkg plus
// the extra packages it needs.
package catalog
