// Package ecs provides ECS adapters for gesture's event stream.
//
// The primary adapter is [NewDonburiSink], which bridges recognizer events
// (pointer down/up, press, drag start/continue/end) into a [Donburi] world
// as typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	recognizer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
