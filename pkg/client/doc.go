/*
Package client implements the Client Fan-Out component (spec component
4.F): a single grpc.ClientConn shared by every topic a caller has
subscribed to, with a per-topic list of in-process handler functions
fed by one upstream Subscribe stream.

	┌────────────────────────── Client ───────────────────────────┐
	│                                                               │
	│  conn  *grpc.ClientConn                                      │
	│  upstreams: topic → *upstream{cancel, handlers []Handler}    │
	│                                                               │
	│  Subscribe(topic, group?, handler)                           │
	│    │                                                          │
	│    ├─ topic already has an upstream? just append handler     │
	│    └─ else: open one Subscribe RPC, start its recv loop,      │
	│             append handler as upstream's first entry          │
	│                                                               │
	│  recv loop: for each Notification, snapshot the handler       │
	│  list and call each one with panic recovery (a HandlerFault   │
	│  never brings down the loop or any other handler)              │
	│                                                               │
	│  Unsubscribe(topic, handler)                                  │
	│    └─ remove handler from the list; once empty, cancel the    │
	│       upstream RPC and call the server's Unsubscribe too       │
	└───────────────────────────────────────────────────────────────┘

A Handler is never told to stop by having its buffer silently overflow
the way the teacher's in-process Broker drops events on a full
channel: with no transport between publisher and handler there is
nothing to buffer, so a slow handler simply delays the next
Notification for every other handler on the same topic.
*/
package client
