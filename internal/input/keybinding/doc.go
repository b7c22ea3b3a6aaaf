// Package keybinding holds runtime-registered keybindings.
//
// The registry is the dynamic tier of the two-tier binding model: static
// entries are declared at host construction (or loaded from config) and
// owned by the dispatcher, while this registry accepts registrations at
// runtime without a host restart. Dynamic entries carry a fixed high
// weight, so at an equal chord a dynamic binding always outranks a static
// one.
package keybinding
