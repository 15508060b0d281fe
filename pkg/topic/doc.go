/*
Package topic implements the Topic Engine (spec component 4.C): the
per-topic publish/read operations built on a streamstore.Adapter. It
owns entry-ID minting for publish and action-filtering for get, and
wraps the adapter's blocking reads for follow/group-follow. It holds no
locks of its own — concurrent publishes to the same topic are
serialized by the adapter, not by this package.
*/
package topic
