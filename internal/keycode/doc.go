// Package keycode defines the closed alphabet of key codes, modifier names
// and Apple top-case codes that Karabiner-Elements accepts.
//
// Values are plain strings so they serialize directly into the generated
// document. Valid reports membership; nothing in this package performs I/O.
package keycode
