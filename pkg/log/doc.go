/*
Package log provides structured logging via zerolog: a global logger
initialized once with Init, plus component-scoped child loggers for the
topic, subscribe, rpcserver and client packages.

# Usage

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})

	engineLog := log.WithComponent("topic")
	engineLog.Info().Str("topic", topic).Msg("event appended")

	log.WithTopic(topic).Debug().Msg("follow loop woke")
	log.WithPeer(peerID).Warn().Msg("subscribe without group, fan-out only")
	log.WithGroup(group).Error().Err(err).Msg("ack failed")

With JSONOutput left false (the zero value, and the server's --log-json
default) Init uses a human-readable console writer; set JSONOutput: true
for JSON output in production.
*/
package log
