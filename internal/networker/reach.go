// internal/networker/reach.go
package networker

import (
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/slide-remote/internal/msg"
)

// markUnreachable applies the failure transition.
// Only the first failure of a run emits a banner.
func (w *Worker) markUnreachable(err error) {
	if w.reach == Unreachable {
		log.WithError(err).Debug("networker: still unreachable")
		return
	}

	log.WithFields(log.Fields{"from": w.reach}).WithError(err).Warn("networker: server unreachable")
	w.reach = Unreachable
	w.status(textUnreachable, msg.Bad, msg.ServerUnreachable)
}

// markReachable applies the recovery transition.
// Only the first success of a run emits a banner.
func (w *Worker) markReachable() {
	if w.reach == Reachable {
		return
	}

	log.WithFields(log.Fields{"from": w.reach}).Info("networker: server reachable")
	w.reach = Reachable
	w.status(textConnected, msg.Good, msg.ServerReachable)
}
