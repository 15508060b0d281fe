/*
Package streamstore is the narrow facade (spec component 4.A) over the
append-only keyed-stream backend: Redis Streams. Nothing above this
package knows that Redis is involved — it sees Append/Range/Tail/
GroupEnsure/GroupRead/GroupAck and one of a small closed set of error
kinds.

	┌──────────────── topic.Engine / subscribe.Multiplexer ───────────┐
	│                          calls                                   │
	└───────────────────────────┬──────────────────────────────────────┘
	                            ▼
	                    streamstore.Adapter
	                            │
	                 ┌──────────┴──────────┐
	                 ▼                     ▼
	           XADD / XRANGE         XGROUP / XREADGROUP / XACK
	                 │                     │
	                 └──────────┬──────────┘
	                            ▼
	                    Redis key "events:<topic>"

A Timeout from a blocking read (Tail, GroupRead) is not an error: it
surfaces as an empty result slice with a nil error, exactly as spec.md
§4.A and §7 require, so callers never have to distinguish "no new
entries yet" from "something went wrong".
*/
package streamstore
