/*
Package subscribe implements the Subscription Multiplexer (spec
component 4.D) — the server-side state machine that turns one
long-lived streaming RPC call into a tail-follow loop over a
topic.Engine, with explicit cancellation from either side:

	┌───────────────────── Multiplexer ─────────────────────────┐
	│                                                             │
	│   subs: (topic, peer) → *state{active bool}                │
	│                                                             │
	│   Subscribe(topic, peer, group?, emit)                      │
	│     │                                                        │
	│     ├─ reject if already active        (AlreadySubscribed)  │
	│     ├─ cursor = LATEST                                      │
	│     └─ loop while active && ctx not done:                   │
	│          batch = engine.Follow / engine.GroupFollow         │
	│          for each entry: emit(Notification); advance cursor │
	│          (empty batch just loops — the blocking read        │
	│           underneath is what sleeps, not this loop)         │
	│                                                             │
	│   Unsubscribe(topic, peer)                                   │
	│     └─ flips active to false and returns immediately;       │
	│        the running loop notices on its next block timeout   │
	└─────────────────────────────────────────────────────────────┘

Cancellation has two independent sources — an explicit Unsubscribe call
and the streaming RPC's context being cancelled (peer disconnect,
server shutdown) — and both are checked on every loop iteration so
teardown never takes longer than one block-timeout window.
*/
package subscribe
