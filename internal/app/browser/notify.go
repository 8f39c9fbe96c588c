package browser

import "github.com/tabwin/tabwin/internal/domain/entity"

// notifyBatch queues notifier calls made while the controller lock is held
// and delivers them once the lock is released, so a notifier is free to call
// back into the controller.
type notifyBatch struct {
	notifier Notifier
	events   []func(Notifier)
}

func (b *notifyBatch) tabOpened(opened entity.Tab, previous *entity.Tab) {
	b.events = append(b.events, func(n Notifier) { n.TabOpened(opened, previous) })
}

func (b *notifyBatch) tabClosed(id entity.TabID) {
	b.events = append(b.events, func(n Notifier) { n.TabClosed(id) })
}

func (b *notifyBatch) activeTabChanged(id entity.TabID) {
	b.events = append(b.events, func(n Notifier) { n.ActiveTabChanged(id) })
}

func (b *notifyBatch) registryChanged(snap entity.RegistrySnapshot) {
	b.events = append(b.events, func(n Notifier) { n.RegistryChanged(snap) })
}

func (b *notifyBatch) flush() {
	if b.notifier == nil {
		return
	}
	for _, ev := range b.events {
		ev(b.notifier)
	}
}
