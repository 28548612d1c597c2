// Package storage connects initializers to concrete storage strategies and
// hands back typed, ownership-appropriate handles.
//
// # Adapters
//
//   - StackSlot[T]: bounded automatic storage. The memory is embedded in the
//     StackSlot itself, so it lives exactly as long as the enclosing scope
//     keeps the StackSlot. Suited to pin-flavored initializers whose
//     consumer does not need the value to outlive that scope.
//   - Box[T] (NewBox): unique heap ownership at a fixed heap address.
//   - Arc[T] (NewArc): shared, reference-counted heap ownership; the
//     address stays fixed as long as any reference exists.
//
// All three share one contract: on initializer failure the raw memory
// reserved for the attempt is surrendered with no Dropper call, and the
// error is returned as-is. On success the handle owns the value; its Drop
// runs the value's Dropper exactly once.
//
// Go's heap allocator does not report exhaustion, so these adapters have no
// allocation-failure path of their own; for storage whose acquisition can
// genuinely fail, see the arena package.
//
// # Pinning
//
// Every adapter here hands the initializer a pinned slot: heap objects never
// move, and a StackSlot's embedded memory keeps one consistent identity for
// the value's whole life, provided the StackSlot itself is never copied,
// which its contract forbids after Emplace. If the runtime relocates a
// goroutine stack it rewrites every pointer into it, so pointers recorded
// during construction stay mutually consistent even though the numeric
// address is not guaranteed fixed.
package storage
