// Package wtwire defines the messages exchanged between a watchtower client
// and a watchtower.
//
// Every message is a wire.Message. The catalog is fixed:
//
//	600 Init                 feature negotiation and chain selection
//	601 Error                generic failure with opaque data
//	602 CreateSession        session parameters proposed by the client
//	603 CreateSessionReply   tower's answer to CreateSession
//	604 StateUpdate          one encrypted justice blob
//	605 StateUpdateReply     acknowledgement of a StateUpdate
//	606 DeleteSession        request to drop the current session
//	607 DeleteSessionReply   tower's answer to DeleteSession
//
// The message structs are generated from messages.yaml by cmd/wtwire-gen.
// Message is a closed set: only the types in this package implement it.
// ReadMessage reads a type tag and dispatches to the matching decoder;
// WriteMessage encodes any member.
//
// Reply codes are namespaced by operation. A reply whose code is zero
// carries no error.
package wtwire

//go:generate go run ../../cmd/wtwire-gen -schema messages.yaml -output messages_gen.go
