// Package plugin wires the sweep orchestration into a host editor.
//
// It provides the registration glue around the core: a JSON manifest
// describing the plugin and its command contributions, a command registry
// binding command IDs to handlers, a System that performs explicit
// one-time initialization, and gopher-lua bindings so host plugin
// scripts can trigger a sweep.
package plugin
